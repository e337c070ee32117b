package utils

import (
	"encoding/json"
	"net/http"
)

// Json пишет ответ с заданным статусом и телом, сериализованным в JSON.
func Json(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Err пишет ошибку в едином формате {"error": "..."}.
func Err(w http.ResponseWriter, status int, err error) error {
	return Json(w, status, map[string]string{"error": err.Error()})
}
