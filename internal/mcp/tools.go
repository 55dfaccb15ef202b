package mcp

import (
	"context"

	"chatbot_mcp/internal/model"
	"chatbot_mcp/internal/service"
)

const searchUsersSchema = `{
  "type": "object",
  "properties": {
    "status": {"type": "string", "enum": ["active", "inactive"]}
  },
  "required": ["status"]
}`

// SearchUsersArgs filters users by account status
type SearchUsersArgs struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// ChatbotTools returns the chatbot's tools in the order tools/list reports them.
// search_user_info and search_debts only ever read the caller's own records.
func ChatbotTools(users service.UserService, debts service.DebtService) []Tool {
	return []Tool{
		NewTool("search_users", "Search users", "Lists users with the given status",
			searchUsersSchema,
			func(ctx context.Context, args SearchUsersArgs, _ model.AuthInfo) (any, error) {
				return users.ListByStatus(ctx, args.Status)
			}),
		NewTool("search_user_info", "Authenticated user info", "Returns the profile of the authenticated user",
			"",
			func(ctx context.Context, _ NoArgs, auth model.AuthInfo) (any, error) {
				return users.FindByID(ctx, auth.ClientID)
			}),
		NewTool("search_debts", "Authenticated user debts", "Lists the debts of the authenticated user ordered by due date",
			"",
			func(ctx context.Context, _ NoArgs, auth model.AuthInfo) (any, error) {
				return debts.ListByUser(ctx, auth.ClientID)
			}),
	}
}
