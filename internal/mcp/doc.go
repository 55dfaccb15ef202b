// Package mcp serves the chatbot tools over the Model Context Protocol.
//
// Clients POST JSON-RPC 2.0 messages to /mcp:
//
//	{
//	  "jsonrpc": "2.0",
//	  "id": 1,
//	  "method": "tools/call",
//	  "params": {"name": "search_users", "arguments": {"status": "active"}}
//	}
//
// Every message except the initialize handshake and notifications carries
//
//	Authorization: Bearer <token>
//
// The token subject is handed to each tool as model.AuthInfo.ClientID, so
// tools that read per-user data are scoped to the caller.
//
// Tools are plain values built with NewTool and collected into a Registry
// when the server is wired. There is no global registration.
package mcp
