package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RecommendationList(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid list",
			payload: `[{"content_type": "tutorial", "priority_score": 0.9, "hashtags": ["#a"]}]`,
		},
		{
			name:    "string priority accepted",
			payload: `[{"priority_score": "0.8"}]`,
		},
		{
			name:    "empty list",
			payload: `[]`,
		},
		{
			name:    "object instead of array",
			payload: `{"content_type": "tutorial"}`,
			wantErr: true,
		},
		{
			name:    "boolean priority rejected",
			payload: `[{"priority_score": true}]`,
			wantErr: true,
		},
		{
			name:    "non-string hashtags rejected",
			payload: `[{"hashtags": [1, 2]}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(RecommendationList, json.RawMessage(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, RecommendationList, verr.Schema)
				assert.NotEmpty(t, verr.Issues)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Story(t *testing.T) {
	valid := `{"title": "T", "narrative": "N", "platform_adaptations": {"instagram": "short"}}`
	assert.NoError(t, Validate(Story, json.RawMessage(valid)))

	invalid := `{"platform_adaptations": {"instagram": 42}}`
	assert.Error(t, Validate(Story, json.RawMessage(invalid)))
}

func TestValidate_SalesOptimization(t *testing.T) {
	valid := `{"optimized_title": "Buy now", "sales_hooks": ["limited"]}`
	assert.NoError(t, Validate(SalesOptimization, json.RawMessage(valid)))

	invalid := `{"sales_hooks": "limited"}`
	assert.Error(t, Validate(SalesOptimization, json.RawMessage(invalid)))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.json", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")
}
