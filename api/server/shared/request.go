// Package shared holds the request decoding and result writing helpers used
// by every handler.
package shared

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/gorilla/schema"
)

var queryDecoder *schema.Decoder

func init() {
	queryDecoder = schema.NewDecoder()
	queryDecoder.IgnoreUnknownKeys(true)

	queryDecoder.RegisterConverter(time.Time{}, func(value string) reflect.Value {
		ts, err := time.Parse(time.RFC3339, value)

		if err != nil {
			return reflect.Value{}
		}

		return reflect.ValueOf(ts)
	})
}

// DecodeQuery populates req from the request's query parameters using the
// struct's schema tags. Timestamps are RFC 3339.
func DecodeQuery(r *http.Request, req interface{}) error {
	return queryDecoder.Decode(req, r.URL.Query())
}

// DecodeJSON populates req from the request body.
func DecodeJSON(r *http.Request, req interface{}) error {
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(req)
}
