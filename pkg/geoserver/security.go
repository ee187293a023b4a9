package geoserver

// User and role management through the GeoServer security REST API.

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetUsers lists the users of the default user/group service.
func (c *Client) GetUsers(ctx context.Context) (string, int, error) {
	return c.get(ctx, "/rest/security/usergroup/users.json", nil)
}

// CreateUser creates a user in the default user/group service.
func (c *Client) CreateUser(ctx context.Context, username, password string, enabled bool) (string, int, error) {
	payload := map[string]any{
		"user": map[string]any{
			"userName": username,
			"password": password,
			"enabled":  enabled,
		},
	}
	body, code, err := c.postJSON(ctx, "/rest/security/usergroup/users.json", nil, payload)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("User %q created", username)), code, nil
	}
	return body, code, nil
}

// UpdateUser updates a user's password and/or enabled flag. Nil fields are
// left unchanged.
func (c *Client) UpdateUser(ctx context.Context, username string, password *string, enabled *bool) (string, int, error) {
	user := map[string]any{}
	if password != nil {
		user["password"] = *password
	}
	if enabled != nil {
		user["enabled"] = *enabled
	}
	body, code, err := c.postJSON(ctx, "/rest/security/usergroup/user/"+url.PathEscape(username)+".json", nil, map[string]any{"user": user})
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("User %q updated", username)), code, nil
	}
	return body, code, nil
}

// DeleteUser deletes a user from the default user/group service.
func (c *Client) DeleteUser(ctx context.Context, username string) (string, int, error) {
	body, code, err := c.delete(ctx, "/rest/security/usergroup/user/"+url.PathEscape(username), nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("User %q deleted", username)), code, nil
	}
	return body, code, nil
}

// GetRoles lists all roles of the default role service.
func (c *Client) GetRoles(ctx context.Context) (string, int, error) {
	return c.get(ctx, "/rest/security/roles.json", nil)
}

// CreateRole creates a role in the default role service.
func (c *Client) CreateRole(ctx context.Context, role string) (string, int, error) {
	body, code, err := c.do(ctx, http.MethodPost, "/rest/security/roles/role/"+url.PathEscape(role), nil, "", nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Role %q created", role)), code, nil
	}
	return body, code, nil
}

// DeleteRole deletes a role from the default role service.
func (c *Client) DeleteRole(ctx context.Context, role string) (string, int, error) {
	body, code, err := c.delete(ctx, "/rest/security/roles/role/"+url.PathEscape(role), nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Role %q deleted", role)), code, nil
	}
	return body, code, nil
}

// GetUserRoles lists the roles assigned to a user.
func (c *Client) GetUserRoles(ctx context.Context, username string) (string, int, error) {
	return c.get(ctx, "/rest/security/roles/user/"+url.PathEscape(username)+".json", nil)
}

// AssignRoleToUser grants a role to a user.
func (c *Client) AssignRoleToUser(ctx context.Context, username, role string) (string, int, error) {
	body, code, err := c.do(ctx, http.MethodPost, "/rest/security/roles/role/"+url.PathEscape(role)+"/user/"+url.PathEscape(username), nil, "", nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Role %q assigned to user %q", role, username)), code, nil
	}
	return body, code, nil
}

// RemoveRoleFromUser revokes a role from a user.
func (c *Client) RemoveRoleFromUser(ctx context.Context, username, role string) (string, int, error) {
	body, code, err := c.delete(ctx, "/rest/security/roles/role/"+url.PathEscape(role)+"/user/"+url.PathEscape(username), nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("Role %q removed from user %q", role, username)), code, nil
	}
	return body, code, nil
}
