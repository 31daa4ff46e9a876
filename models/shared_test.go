package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body    string
		want    FlexibleID
		wantErr bool
	}{
		{`{"userId":7}`, 7, false},
		{`{"userId":"12"}`, 12, false},
		{`{"userId":null}`, 0, false},
		{`{"userId":""}`, 0, false},
		{`{}`, 0, false},
		{`{"userId":"-5"}`, 0, true},
		{`{"userId":-5}`, 0, true},
		{`{"userId":0}`, 0, false},
		{`{"userId":"abc"}`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req MarkReadRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.UserID)
		})
	}
}

func TestFlexibleID_UnmarshalParam(t *testing.T) {
	var id FlexibleID
	require.NoError(t, id.UnmarshalParam(" 3 "))
	assert.Equal(t, FlexibleID(3), id)
	assert.Error(t, id.UnmarshalParam("-1"))
}
