package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type userArgs struct {
	Username string `json:"username" jsonschema:"name of the user"`
}

type roleArgs struct {
	RoleName string `json:"role_name" jsonschema:"name of the role"`
}

type userRoleArgs struct {
	Username string `json:"username" jsonschema:"name of the user"`
	RoleName string `json:"role_name" jsonschema:"name of the role"`
}

type usersResult struct {
	Users      any `json:"users"`
	StatusCode int `json:"status_code"`
}

type rolesResult struct {
	Roles      any `json:"roles"`
	StatusCode int `json:"status_code"`
}

func (s *Server) registerSecurityTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_users",
		Description: "List the users of the default user/group service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, usersResult, error) {
		content, code, err := s.geoserver.GetUsers(ctx)
		if err != nil {
			return nil, usersResult{}, err
		}
		return nil, usersResult{Users: jsonValue(content), StatusCode: code}, nil
	})

	type createUserArgs struct {
		Username string `json:"username" jsonschema:"name for the new user"`
		Password string `json:"password" jsonschema:"password for the new user"`
		Enabled  *bool  `json:"enabled,omitempty" jsonschema:"whether the user is enabled (default true)"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_user",
		Description: "Create a user in the default user/group service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args createUserArgs) (*mcp.CallToolResult, messageResult, error) {
		enabled := true
		if args.Enabled != nil {
			enabled = *args.Enabled
		}
		content, code, err := s.geoserver.CreateUser(ctx, args.Username, args.Password, enabled)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	type updateUserArgs struct {
		Username string  `json:"username" jsonschema:"name of the user to update"`
		Password *string `json:"password,omitempty" jsonschema:"new password"`
		Enabled  *bool   `json:"enabled,omitempty" jsonschema:"enable or disable the user"`
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_user",
		Description: "Update the password or enabled flag of a user. Only the given fields change.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args updateUserArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.UpdateUser(ctx, args.Username, args.Password, args.Enabled)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_user",
		Description: "Delete a user from the default user/group service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args userArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteUser(ctx, args.Username)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_roles",
		Description: "List the roles of the default role service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, rolesResult, error) {
		content, code, err := s.geoserver.GetRoles(ctx)
		if err != nil {
			return nil, rolesResult{}, err
		}
		return nil, rolesResult{Roles: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_role",
		Description: "Create a role in the default role service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args roleArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.CreateRole(ctx, args.RoleName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_role",
		Description: "Delete a role from the default role service.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args roleArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.DeleteRole(ctx, args.RoleName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_user_roles",
		Description: "List the roles assigned to a user.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args userArgs) (*mcp.CallToolResult, rolesResult, error) {
		content, code, err := s.geoserver.GetUserRoles(ctx, args.Username)
		if err != nil {
			return nil, rolesResult{}, err
		}
		return nil, rolesResult{Roles: jsonValue(content), StatusCode: code}, nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "assign_role_to_user",
		Description: "Assign a role to a user.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args userRoleArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.AssignRoleToUser(ctx, args.Username, args.RoleName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_role_from_user",
		Description: "Remove a role from a user.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args userRoleArgs) (*mcp.CallToolResult, messageResult, error) {
		content, code, err := s.geoserver.RemoveRoleFromUser(ctx, args.Username, args.RoleName)
		if err != nil {
			return nil, messageResult{}, err
		}
		return nil, message(content, code), nil
	})
}
