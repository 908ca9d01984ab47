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

package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/clientcheck/test/api"

	"k8s.io/utils/ptr"
)

func rawResponse(status int, body string) *api.RawResponse {
	return &api.RawResponse{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	}
}

func TestDeserializeSuccess(t *testing.T) {
	t.Parallel()

	record, err := api.Deserialize[api.ClientResponseSuccess](rawResponse(http.StatusOK, `{"name":"test","age":1,"adi":"addition_info"}`))
	require.NoError(t, err)

	expected := &api.ClientResponseSuccess{
		Name:           ptr.To("test"),
		Age:            ptr.To[int64](1),
		AdditionalInfo: ptr.To("addition_info"),
	}

	require.Equal(t, expected, record)
}

func TestDeserializeEmptyBody(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "  \n", "null", "{}"} {
		record, err := api.Deserialize[api.ClientResponseSuccess](rawResponse(http.StatusOK, body))
		require.NoError(t, err, body)
		require.Equal(t, &api.ClientResponseSuccess{}, record, body)
	}
}

func TestDeserializeIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	record, err := api.Deserialize[api.ClientResponseSuccess](rawResponse(http.StatusOK, `{"name":"test","age":1,"adi":"addition_info","extra":{"nested":true}}`))
	require.NoError(t, err)
	require.Equal(t, "test", *record.Name)
	require.Equal(t, int64(1), *record.Age)
}

func TestDeserializeInvalidJSON(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{"name":`, `<html>oops</html>`, `{"age":"one"}`} {
		_, err := api.Deserialize[api.ClientResponseSuccess](rawResponse(http.StatusOK, body))
		require.ErrorIs(t, err, api.ErrDeserialization, body)
	}
}

func TestDecodeClientResultSuccess(t *testing.T) {
	t.Parallel()

	result, err := api.DecodeClientResult(rawResponse(http.StatusOK, `{"name":"test","age":1,"adi":"addition_info"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, result.StatusCode)
	require.NotNil(t, result.Success)
	require.Nil(t, result.Error)
	require.Equal(t, "addition_info", *result.Success.AdditionalInfo)
}

func TestDecodeClientResultError(t *testing.T) {
	t.Parallel()

	result, err := api.DecodeClientResult(rawResponse(http.StatusBadRequest, `{"errors":[{"code":"missing_field","message":"Missing required field 'id'"}]}`))
	require.NoError(t, err)
	require.Nil(t, result.Success)
	require.NotNil(t, result.Error)
	require.Equal(t, []api.Error{{Code: "missing_field", Message: "Missing required field 'id'"}}, result.Error.Errors)
	require.Equal(t, []string{"Missing required field 'id'"}, result.Error.Messages())
}

func TestDecodeClientResultEmptyErrorBody(t *testing.T) {
	t.Parallel()

	result, err := api.DecodeClientResult(rawResponse(http.StatusInternalServerError, ""))
	require.NoError(t, err)
	require.NotNil(t, result.Error)
	require.Empty(t, result.Error.Messages())
}
