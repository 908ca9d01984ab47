/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"context"
	"fmt"
)

// ClientService is the typed entry point for the happy path.  Failure
// scenarios use APIClient directly so they keep the raw status code.
type ClientService struct {
	client *APIClient
}

// NewClientService returns a new service.
func NewClientService(client *APIClient) *ClientService {
	return &ClientService{
		client: client,
	}
}

// PostClient posts a client record and returns the accepted record.
// A non-success status is returned as a *StatusError.
func (s *ClientService) PostClient(ctx context.Context, request ClientRequest) (*ClientResponseSuccess, error) {
	raw, err := s.client.PostClient(ctx, request, nil)
	if err != nil {
		return nil, fmt.Errorf("posting client: %w", err)
	}

	result, err := DecodeClientResult(raw)
	if err != nil {
		return nil, err
	}

	if result.Success == nil {
		return nil, &StatusError{
			StatusCode: result.StatusCode,
			Response:   result.Error,
			TraceID:    raw.TraceID(),
		}
	}

	return result.Success, nil
}
