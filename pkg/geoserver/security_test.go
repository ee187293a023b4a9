package geoserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	_, _, err := client.CreateUser(t.Context(), "alice", "s3cret", true)
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/rest/security/usergroup/users.json", req.Path)

	user := jsonBody(t, req.Body)["user"].(map[string]any)
	assert.Equal(t, "alice", user["userName"])
	assert.Equal(t, "s3cret", user["password"])
	assert.Equal(t, true, user["enabled"])
}

func TestUpdateUserOnlySendsChangedFields(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec)

	enabled := false
	_, _, err := client.UpdateUser(t.Context(), "alice", nil, &enabled)
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "/rest/security/usergroup/user/alice.json", req.Path)

	user := jsonBody(t, req.Body)["user"].(map[string]any)
	assert.Equal(t, false, user["enabled"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestRolePaths(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec)

	_, _, err := client.CreateRole(t.Context(), "EDITOR")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.last(t).Method)
	assert.Equal(t, "/rest/security/roles/role/EDITOR", rec.last(t).Path)

	_, _, err = client.AssignRoleToUser(t.Context(), "alice", "EDITOR")
	require.NoError(t, err)
	assert.Equal(t, "/rest/security/roles/role/EDITOR/user/alice", rec.last(t).Path)

	_, _, err = client.RemoveRoleFromUser(t.Context(), "alice", "EDITOR")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.last(t).Method)

	_, _, err = client.GetUserRoles(t.Context(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "/rest/security/roles/user/alice.json", rec.last(t).Path)
}

func TestCreateAclRule(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	_, _, err := client.CreateAclRule(t.Context(), 5, "ALLOW", "EDITOR", "", "WMS", "", "demo")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, "/acl/api/rules", req.Path)

	rule := jsonBody(t, req.Body)
	assert.Equal(t, float64(5), rule["priority"])
	assert.Equal(t, "ALLOW", rule["access"])
	assert.Equal(t, "EDITOR", rule["role"])
	assert.Equal(t, "WMS", rule["service"])
	assert.Equal(t, "demo", rule["workspace"])
	// Empty fields are wildcards and stay out of the payload.
	_, hasUser := rule["user"]
	assert.False(t, hasUser)
}

func TestCreateAclRuleDefaultsToDeny(t *testing.T) {
	rec := &recorder{status: http.StatusCreated}
	client := newTestClient(t, rec)

	_, _, err := client.CreateAclRule(t.Context(), 0, "", "", "", "", "", "")
	require.NoError(t, err)

	rule := jsonBody(t, rec.last(t).Body)
	assert.Equal(t, "DENY", rule["access"])
}

func TestDeleteAclRuleByID(t *testing.T) {
	rec := &recorder{}
	client := newTestClient(t, rec)

	_, _, err := client.DeleteAclRule(t.Context(), 42)
	require.NoError(t, err)
	assert.Equal(t, "/acl/api/rules/id/42", rec.last(t).Path)

	_, _, err = client.DeleteAclAdminRule(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, "/acl/api/adminrules/id/7", rec.last(t).Path)
}
