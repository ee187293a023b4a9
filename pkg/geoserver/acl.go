package geoserver

// Access control rules, served by the GeoServer ACL plugin under
// <base>/acl/api.

import (
	"context"
	"fmt"
	"strconv"
)

// GetAclRules lists all data access rules.
func (c *Client) GetAclRules(ctx context.Context) (string, int, error) {
	return c.get(ctx, "/acl/api/rules", nil)
}

// CreateAclRule creates a data access rule. Empty string fields act as
// wildcards, matching any value.
func (c *Client) CreateAclRule(ctx context.Context, priority int, access, role, user, service, request, workspace string) (string, int, error) {
	if access == "" {
		access = "DENY"
	}
	rule := map[string]any{
		"priority": priority,
		"access":   access,
	}
	setIfNotEmpty(rule, "role", role)
	setIfNotEmpty(rule, "user", user)
	setIfNotEmpty(rule, "service", service)
	setIfNotEmpty(rule, "request", request)
	setIfNotEmpty(rule, "workspace", workspace)

	body, code, err := c.postJSON(ctx, "/acl/api/rules", nil, rule)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, "ACL rule created"), code, nil
	}
	return body, code, nil
}

// DeleteAclRule deletes a data access rule by ID.
func (c *Client) DeleteAclRule(ctx context.Context, id int) (string, int, error) {
	body, code, err := c.delete(ctx, "/acl/api/rules/id/"+strconv.Itoa(id), nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("ACL rule %d deleted", id)), code, nil
	}
	return body, code, nil
}

// DeleteAllAclRules deletes every data access rule.
func (c *Client) DeleteAllAclRules(ctx context.Context) (string, int, error) {
	body, code, err := c.delete(ctx, "/acl/api/rules", nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, "All ACL rules deleted"), code, nil
	}
	return body, code, nil
}

// GetAclAdminRules lists all workspace administration rules.
func (c *Client) GetAclAdminRules(ctx context.Context) (string, int, error) {
	return c.get(ctx, "/acl/api/adminrules", nil)
}

// CreateAclAdminRule creates a workspace administration rule.
func (c *Client) CreateAclAdminRule(ctx context.Context, priority int, access, role, user, workspace string) (string, int, error) {
	if access == "" {
		access = "ADMIN"
	}
	rule := map[string]any{
		"priority": priority,
		"access":   access,
	}
	setIfNotEmpty(rule, "role", role)
	setIfNotEmpty(rule, "user", user)
	setIfNotEmpty(rule, "workspace", workspace)

	body, code, err := c.postJSON(ctx, "/acl/api/adminrules", nil, rule)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, "ACL admin rule created"), code, nil
	}
	return body, code, nil
}

// DeleteAclAdminRule deletes a workspace administration rule by ID.
func (c *Client) DeleteAclAdminRule(ctx context.Context, id int) (string, int, error) {
	body, code, err := c.delete(ctx, "/acl/api/adminrules/id/"+strconv.Itoa(id), nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, fmt.Sprintf("ACL admin rule %d deleted", id)), code, nil
	}
	return body, code, nil
}

// DeleteAllAclAdminRules deletes every workspace administration rule.
func (c *Client) DeleteAllAclAdminRules(ctx context.Context) (string, int, error) {
	body, code, err := c.delete(ctx, "/acl/api/adminrules", nil)
	if err != nil {
		return "", 0, err
	}
	if isSuccess(code) {
		return messageOr(body, "All ACL admin rules deleted"), code, nil
	}
	return body, code, nil
}

func setIfNotEmpty(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
