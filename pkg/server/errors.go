// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	cmerrors "github.com/vendingworks/coffeemaker/pkg/errors"
	"github.com/vendingworks/coffeemaker/pkg/serializer"
)

// WriteError writes an ErrorResponse with the given status. The request ID
// is taken from the context, or generated when the middleware chain did not
// run.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cmerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to an ErrorResponse. A StructuredError anywhere
// in the chain supplies status, message, and context; anything else is an
// internal error described by fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, details map[string]any) {
	var se *cmerrors.StructuredError
	if stderrors.As(err, &se) {
		merged := mergeDetails(se.Context, details)
		if se.Cause != nil {
			merged = mergeDetails(merged, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), merged)
		return
	}

	merged := mergeDetails(details, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, cmerrors.ErrCodeInternal, fallbackMessage, true, merged)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code cmerrors.ErrorCode) int {
	switch code {
	case cmerrors.ErrCodeInvalidRequest, cmerrors.ErrCodeRecipe, cmerrors.ErrCodeInventory:
		return http.StatusBadRequest
	case cmerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cmerrors.ErrCodeConflict:
		return http.StatusConflict
	case cmerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cmerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cmerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cmerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case cmerrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cmerrors.ErrorCode) bool {
	switch code {
	case cmerrors.ErrCodeTimeout, cmerrors.ErrCodeUnavailable,
		cmerrors.ErrCodeRateLimitExceeded, cmerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries overriding a's, or nil
// when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
