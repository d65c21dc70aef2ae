package campaign

import (
	"context"
	"database/sql"
	"time"

	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CampaignRepository interface {
	List(ctx context.Context, filter *model.CampaignFilter) ([]model.Campaign, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Campaign, error)
	ListActive(ctx context.Context, now time.Time) ([]model.Campaign, error)
	InsertCampaignTx(ctx context.Context, tx *sqlx.Tx, c *model.Campaign) (uint64, error)
	InsertRulesTx(ctx context.Context, tx *sqlx.Tx, campaignID uint64, rules []model.CampaignRule) error
	DeleteRulesTx(ctx context.Context, tx *sqlx.Tx, campaignID uint64) error
	UpdateCampaignTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.CampaignUpdateRequest) error
	Delete(ctx context.Context, id uint64) error
	UpdateStatus(ctx context.Context, id uint64, status constant.CampaignStatus) error
}

func NewCampaignRepository(conn *sqlx.DB) CampaignRepository {
	return &SQL{conn: conn}
}

const (
	listCampaignsBase = `SELECT promotion_id, title, description, type, status, start_time, end_time, created_by, created_at FROM promotion WHERE true`

	listActiveCampaigns = `SELECT promotion_id, title, description, type, status, start_time, end_time, created_by, created_at
FROM promotion
WHERE status = ? AND start_time <= ? AND end_time >= ?
ORDER BY created_at DESC`

	getCampaignByID = `SELECT promotion_id, title, description, type, status, start_time, end_time, created_by, created_at FROM promotion WHERE promotion_id = ?`

	listRulesByCampaigns = `SELECT rule_id, promotion_id, product_id, condition_type, condition_value, discount_type, discount_value, gift_product_id
FROM promotion_rule
WHERE promotion_id IN (?)
ORDER BY rule_id`

	insertCampaignQuery = `INSERT INTO promotion (title, description, type, status, start_time, end_time, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`

	insertRuleQuery = `INSERT INTO promotion_rule (promotion_id, product_id, condition_type, condition_value, discount_type, discount_value, gift_product_id) VALUES (?, ?, ?, ?, ?, ?, ?)`
)

func (s *SQL) List(ctx context.Context, filter *model.CampaignFilter) ([]model.Campaign, int64, error) {
	query := listCampaignsBase
	countQuery := "SELECT COUNT(*) FROM promotion WHERE true"
	args := make([]any, 0, 2)

	if filter.Status != nil {
		query += " AND status = ?"
		countQuery += " AND status = ?"
		args = append(args, *filter.Status)
	}
	if filter.Type != nil {
		query += " AND type = ?"
		countQuery += " AND type = ?"
		args = append(args, *filter.Type)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, offset)

	campaigns, err := s.queryCampaigns(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Campaign, error) {
	var c model.Campaign
	if err := s.conn.QueryRowxContext(ctx, getCampaignByID, id).StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := s.attachRules(ctx, []*model.Campaign{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQL) ListActive(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	return s.queryCampaigns(ctx, listActiveCampaigns, constant.CampaignStatusActive, now, now)
}

func (s *SQL) queryCampaigns(ctx context.Context, query string, args ...any) ([]model.Campaign, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]model.Campaign, 0)
	for rows.Next() {
		var c model.Campaign
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	refs := make([]*model.Campaign, len(campaigns))
	for i := range campaigns {
		refs[i] = &campaigns[i]
	}
	if err := s.attachRules(ctx, refs); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// attachRules loads the rule sets for the given campaigns in one query and
// distributes them preserving rule_id order.
func (s *SQL) attachRules(ctx context.Context, campaigns []*model.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(campaigns))
	byID := make(map[uint64]*model.Campaign, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
		byID[c.ID] = c
		c.Rules = make([]model.CampaignRule, 0)
	}

	query, args, err := sqlx.In(listRulesByCampaigns, ids)
	if err != nil {
		return err
	}
	query = s.conn.Rebind(query)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r model.CampaignRule
		if err := rows.StructScan(&r); err != nil {
			return err
		}
		if c, ok := byID[r.CampaignID]; ok {
			c.Rules = append(c.Rules, r)
		}
	}
	return rows.Err()
}

func (s *SQL) InsertCampaignTx(ctx context.Context, tx *sqlx.Tx, c *model.Campaign) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertCampaignQuery, c.Title, c.Description, c.Type, c.Status, c.StartTime, c.EndTime, c.CreatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) InsertRulesTx(ctx context.Context, tx *sqlx.Tx, campaignID uint64, rules []model.CampaignRule) error {
	for _, r := range rules {
		if _, err := tx.ExecContext(ctx, insertRuleQuery, campaignID, r.ProductID, r.ConditionType, r.ConditionValue, r.DiscountType, r.DiscountValue, r.GiftProductID); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) DeleteRulesTx(ctx context.Context, tx *sqlx.Tx, campaignID uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM promotion_rule WHERE promotion_id = ?", campaignID)
	return err
}

func (s *SQL) UpdateCampaignTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.CampaignUpdateRequest) error {
	query := "UPDATE promotion SET title = ?, description = ?"
	args := []any{req.Title, req.Description}

	if req.Type != nil {
		query += ", type = ?"
		args = append(args, *req.Type)
	}
	if req.StartTime != nil {
		query += ", start_time = ?"
		args = append(args, *req.StartTime)
	}
	if req.EndTime != nil {
		query += ", end_time = ?"
		args = append(args, *req.EndTime)
	}
	if req.Status != nil {
		query += ", status = ?"
		args = append(args, *req.Status)
	}

	query += " WHERE promotion_id = ?"
	args = append(args, id)

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the campaign and its rules. promotion_rule carries
// ON DELETE CASCADE on promotion_id, so one statement is enough.
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM promotion WHERE promotion_id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.CampaignStatus) error {
	res, err := s.conn.ExecContext(ctx, "UPDATE promotion SET status = ? WHERE promotion_id = ?", status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
