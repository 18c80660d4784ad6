// Package sql embeds schema migrations and query text for the history store.
package sql

import "embed"

// Migrations holds the schema migration files, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS

//go:embed queries/insert_conversation.sql
var InsertConversation string

//go:embed queries/get_conversation.sql
var GetConversation string

//go:embed queries/list_conversations.sql
var ListConversations string

//go:embed queries/insert_message.sql
var InsertMessage string

//go:embed queries/list_messages.sql
var ListMessages string

//go:embed queries/insert_estimate.sql
var InsertEstimate string

//go:embed queries/list_estimates.sql
var ListEstimates string
