package productControllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexBool_AcceptsBoolAndString(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"yes"`, false},
		{`null`, false},
	}
	for _, tc := range cases {
		var b flexBool
		err := json.Unmarshal([]byte(tc.raw), &b)
		assert.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, bool(b), tc.raw)
	}
}

func TestFlexBool_RejectsNumbers(t *testing.T) {
	var b flexBool
	assert.Error(t, json.Unmarshal([]byte(`1`), &b))
}

func TestParsePrice(t *testing.T) {
	var in ProductInput
	assert.NoError(t, json.Unmarshal([]byte(`{"price": 19.99}`), &in))
	price, ok := in.parsePrice()
	assert.True(t, ok)
	assert.Equal(t, 19.99, price)

	assert.NoError(t, json.Unmarshal([]byte(`{"price": "49.90"}`), &in))
	price, ok = in.parsePrice()
	assert.True(t, ok)
	assert.Equal(t, 49.90, price)
}

func TestParsePrice_MissingOrMalformed(t *testing.T) {
	var in ProductInput
	assert.NoError(t, json.Unmarshal([]byte(`{"name": "x"}`), &in))
	_, ok := in.parsePrice()
	assert.False(t, ok)

	in.Price = json.Number("gratis")
	_, ok = in.parsePrice()
	assert.False(t, ok)
}
