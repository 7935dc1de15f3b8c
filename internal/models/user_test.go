package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("root").Valid())
}

func TestUser_JSONLayoutOmitsUserName(t *testing.T) {
	b, err := json.Marshal(User{UserName: "bob", DisplayName: "Bob", PasswordHash: "abc", Role: RoleUser})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Bob","password":"abc","role":"user"}`, string(b))
}

func TestItem_JSONLayout(t *testing.T) {
	b, err := json.Marshal(Item{Name: "Batteries", Drawer: 3, Notes: "AA", AddedBy: "admin", Timestamp: "t"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"item":"Batteries","drawer":3,"notes":"AA","added_by":"admin","timestamp":"t"}`, string(b))
}
