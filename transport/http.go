package transport

import (
	"encoding/json"
	"net/http"

	checkoutapp "github.com/codefanw/mall-backend/application/checkout"
	commentapp "github.com/codefanw/mall-backend/application/comment"
	orderapp "github.com/codefanw/mall-backend/application/order"
	productapp "github.com/codefanw/mall-backend/application/product"
	promotionapp "github.com/codefanw/mall-backend/application/promotion"
	userapp "github.com/codefanw/mall-backend/application/user"
	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
	"github.com/codefanw/mall-backend/utils/errors"
	validatorx "github.com/codefanw/mall-backend/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	ProductApp   productapp.ProductApp
	PromotionApp promotionapp.PromotionApp
	CheckoutApp  checkoutapp.CheckoutApp
	OrderApp     orderapp.OrderApp
	CommentApp   commentapp.CommentApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/comments/product/{product_id}", rh.ListProductComments).Methods(http.MethodGet)
	router.HandleFunc("/promotions/available", rh.AvailablePromotions).Methods(http.MethodGet)

	// Protected routes (JWT)
	router.HandleFunc("/checkout/preview", rh.PreviewCheckout).Methods(http.MethodPost)
	router.HandleFunc("/checkout", rh.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/user/{user_id}", rh.ListUserOrders).Methods(http.MethodGet)
	router.HandleFunc("/comments", rh.CreateComment).Methods(http.MethodPost)
	router.HandleFunc("/comments/{comment_id}", rh.DeleteComment).Methods(http.MethodDelete)

	// Admin routes, guarded by static API key instead of user sessions
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/promotions", rh.ListPromotions).Methods(http.MethodGet)
	internal.HandleFunc("/promotions", rh.CreatePromotion).Methods(http.MethodPost)
	internal.HandleFunc("/promotions/{id}", rh.GetPromotion).Methods(http.MethodGet)
	internal.HandleFunc("/promotions/{id}", rh.UpdatePromotion).Methods(http.MethodPut)
	internal.HandleFunc("/promotions/{id}", rh.DeletePromotion).Methods(http.MethodDelete)
	internal.HandleFunc("/promotions/{id}/status", rh.UpdatePromotionStatus).Methods(http.MethodPatch)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.UserApp))

	return router
}

// Register handler
// @Summary Register user
// @Description Register a new user by phone, optionally with email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with phone or email and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
