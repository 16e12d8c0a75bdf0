package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-assistant/pkg/response"
)

func TestDateTime_MarshalUTC(t *testing.T) {
	hanoi := time.FixedZone("ICT", 7*3600)
	at := time.Date(2024, 5, 1, 22, 30, 0, 123456789, hanoi)

	b, err := json.Marshal(response.DateTime(at))
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01T15:30:00.123Z"`, string(b))
}

func TestDateTime_Unmarshal(t *testing.T) {
	var got response.DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T15:30:00Z"`), &got))
	assert.True(t, time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC).Equal(time.Time(got)))

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}
