package httpapi

import (
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathID(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/orders/42", nil), map[string]string{"id": "42"})
	id, err := pathID(req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	req = mux.SetURLVars(httptest.NewRequest("GET", "/", nil), map[string]string{"id": "99999999999999999999"})
	_, err = pathID(req)
	assert.Error(t, err)
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	err := validateStruct(&addItemRequest{ChoiceIDs: []int64{0}})
	var fields fieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "is required", fields["item_id"])
	assert.Contains(t, fields, "choice_ids[0]")
}
