package Models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseUserIDVariants(t *testing.T) {
	type payload struct {
		UserID LooseUserID `json:"add_user_id"`
	}

	cases := []struct {
		name string
		in   string
		want *int
	}{
		{"number", `{"add_user_id": 7}`, intPtr(7)},
		{"numeric string", `{"add_user_id": "42"}`, intPtr(42)},
		{"username string", `{"add_user_id": "admin"}`, nil},
		{"empty string", `{"add_user_id": ""}`, nil},
		{"null", `{"add_user_id": null}`, nil},
		{"absent", `{}`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tc.in), &p))
			got := p.UserID.Int()
			if tc.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tc.want, *got)
			}
		})
	}
}

func TestLooseUserIDRejectsNonScalar(t *testing.T) {
	var u LooseUserID
	assert.Error(t, json.Unmarshal([]byte(`{"nested": true}`), &u))
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &u))
}

func intPtr(n int) *int {
	return &n
}
