package core

import (
	"net/http"

	"github.com/joeydtaylor/steeze-activities/pkg/codec"
)

func writeJSON(w http.ResponseWriter, payload any, status int) {
	b, err := codec.JSON.Marshal(payload)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "encode: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", codec.JSON.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	b, _ := codec.JSON.Marshal(map[string]string{"detail": detail})
	w.Header().Set("Content-Type", codec.JSON.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func statusIf(s, def int) int {
	if s > 0 {
		return s
	}
	return def
}
