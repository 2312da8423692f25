package middleware

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

type Response struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
}

func WriteSuccessData(w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	_ = jsoniter.NewEncoder(w).Encode(Response{
		Data: data,
	})
}

func WriteErrorResponse(w http.ResponseWriter, r *http.Request, errCode int, err string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errCode)

	_ = jsoniter.NewEncoder(w).Encode(Response{
		Error: err,
	})
}
