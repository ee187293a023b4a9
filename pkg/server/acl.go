package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type aclRulesResult struct {
	Rules      any `json:"rules"`
	StatusCode int `json:"status_code"`
}

type aclRuleIDArgs struct {
	RuleID int `json:"rule_id" jsonschema:"identifier of the rule"`
}

func (s *Server) registerAclTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_acl_rules",
		Description: "List the data access rules of the ACL service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, aclRulesResult, error) {
		content, code, err := s.geoserver.GetAclRules(ctx)
		if err != nil {
			return nil, aclRulesResult{}, err
		}
		return nil, aclRulesResult{Rules: jsonValue(content), StatusCode: code}, nil
	})

	type createAclRuleArgs struct {
		Priority      int    `json:"priority" jsonschema:"rule priority, lower evaluates first"`
		Access        string `json:"access,omitempty" jsonschema:"ALLOW, DENY or LIMIT (default DENY)"`
		Role          string `json:"role,omitempty" jsonschema:"role the rule applies to"`
		User          string `json:"user,omitempty" jsonschema:"user the rule applies to"`
		Service       string `json:"service,omitempty" jsonschema:"OGC service, e.g. WMS or WFS"`
		Request       string `json:"request,omitempty" jsonschema:"service request, e.g. GetMap"`
		WorkspaceName string `json:"workspace_name,omitempty" jsonschema:"workspace the rule applies to"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_acl_rule",
		Description: "Create a data access rule in the ACL service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createAclRuleArgs) (*mcp.CallToolResult, messageResult, error) {
		access := args.Access
		if access == "" {
			access = "DENY"
		}
		content, code, err := s.geoserver.CreateAclRule(ctx, args.Priority, access,
			args.Role, args.User, args.Service, args.Request, args.WorkspaceName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_acl_rule",
		Description: "Delete a data access rule by its identifier.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args aclRuleIDArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteAclRule(ctx, args.RuleID)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_all_acl_rules",
		Description: "Delete every data access rule of the ACL service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteAllAclRules(ctx)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_acl_admin_rules",
		Description: "List the administrative access rules of the ACL service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, aclRulesResult, error) {
		content, code, err := s.geoserver.GetAclAdminRules(ctx)
		if err != nil {
			return nil, aclRulesResult{}, err
		}
		return nil, aclRulesResult{Rules: jsonValue(content), StatusCode: code}, nil
	})

	type createAclAdminRuleArgs struct {
		Priority      int    `json:"priority" jsonschema:"rule priority, lower evaluates first"`
		Access        string `json:"access,omitempty" jsonschema:"ADMIN or USER (default ADMIN)"`
		Role          string `json:"role,omitempty" jsonschema:"role the rule applies to"`
		User          string `json:"user,omitempty" jsonschema:"user the rule applies to"`
		WorkspaceName string `json:"workspace_name,omitempty" jsonschema:"workspace the rule applies to"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_acl_admin_rule",
		Description: "Create an administrative access rule in the ACL service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createAclAdminRuleArgs) (*mcp.CallToolResult, messageResult, error) {
		access := args.Access
		if access == "" {
			access = "ADMIN"
		}
		content, code, err := s.geoserver.CreateAclAdminRule(ctx, args.Priority, access,
			args.Role, args.User, args.WorkspaceName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_acl_admin_rule",
		Description: "Delete an administrative access rule by its identifier.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args aclRuleIDArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteAclAdminRule(ctx, args.RuleID)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_all_acl_admin_rules",
		Description: "Delete every administrative access rule of the ACL service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteAllAclAdminRules(ctx)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
