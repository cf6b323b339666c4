package jsoncodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
}

func TestCodec_Name(t *testing.T) {
	assert.Equal(t, "json", Codec{}.Name())
}

func TestCodec_RoundTrip(t *testing.T) {
	data, err := Codec{}.Marshal(&sample{UserID: "user_id", Username: "username"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":"user_id","username":"username"}`, string(data))

	var got sample
	require.NoError(t, Codec{}.Unmarshal(data, &got))
	assert.Equal(t, sample{UserID: "user_id", Username: "username"}, got)
}

func TestCodec_UnmarshalEmptyBody(t *testing.T) {
	var got sample
	assert.NoError(t, Codec{}.Unmarshal(nil, &got))
	assert.Equal(t, sample{}, got)
}

func TestCodec_UnmarshalInvalid(t *testing.T) {
	var got sample
	err := Codec{}.Unmarshal([]byte("{"), &got)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jsoncodec.sample")
}

func TestCodec_MarshalUnsupported(t *testing.T) {
	_, err := Codec{}.Marshal(make(chan int))
	assert.Error(t, err)
}
