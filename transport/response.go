package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/utils/errors"
)

type successResponse struct {
	Success   bool        `json:"success"`
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type errorResponse struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(successResponse{
		Success:   true,
		Code:      constant.ErrorTypeCode[constant.Successful],
		Message:   constant.ErrorTypeMessage[constant.Successful],
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func writeError(w http.ResponseWriter, err error) {
	customErr, ok := err.(errors.CustomError)
	if !ok {
		customErr = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(customErr.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(errorResponse{
		Success:   false,
		Code:      customErr.ErrorCode(),
		Message:   customErr.Error(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
