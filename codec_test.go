package tuid

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

type grant struct {
	User ID[user, V4] `json:"user" yaml:"user"`
	Role ID[role, V5] `json:"role" yaml:"role"`
}

func TestJSONRoundTrip(t *testing.T) {
	original := grant{
		User: NewV4[user](),
		Role: NewV5[role](NameSpaceDNS, []byte("admin")),
	}
	data, err := json.Marshal(original)
	assert.NoError(t, err)
	// the wire form is the untyped canonical string, nothing more
	assert.Contains(t, string(data), original.User.String())
	assert.Contains(t, string(data), original.Role.String())

	var decoded grant
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestYAMLRoundTrip(t *testing.T) {
	original := grant{
		User: NewV4[user](),
		Role: NewV5[role](NameSpaceDNS, []byte("admin")),
	}
	data, err := yaml.Marshal(original)
	assert.NoError(t, err)
	assert.Contains(t, string(data), original.User.String())

	var decoded grant
	assert.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestBinaryRoundTrip(t *testing.T) {
	original := NewV7[user]()
	data, err := original.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, data, 16)

	var decoded ID[user, V7]
	assert.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, original, decoded)
}

func TestSQLRoundTrip(t *testing.T) {
	original := NewV4[user]()
	value, err := original.Value()
	assert.NoError(t, err)

	var decoded ID[user, V4]
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

// Decoding restores bytes as-is: a value whose embedded version disagrees
// with the declared scheme is accepted. FromUUID is the validated path.
func TestDecodeSkipsVersionValidation(t *testing.T) {
	v4 := uuid.New()

	var id ID[user, V1]
	assert.NoError(t, id.UnmarshalText([]byte(v4.String())))
	assert.EqualValues(t, 4, id.Version())

	var fromYAML struct {
		ID ID[user, V1] `yaml:"id"`
	}
	assert.NoError(t, yaml.Unmarshal([]byte("id: "+v4.String()+"\n"), &fromYAML))
	assert.Equal(t, v4, fromYAML.ID.UUID)
}
