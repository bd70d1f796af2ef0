/*
Package mcp implements an MCP server that exposes the tool catalog search.

The server uses stdio transport (newline-delimited JSON-RPC 2.0) and exposes
four tools:
  - catalog_search: rank catalog tools against a query, with filters
  - catalog_suggest: complete a partial query
  - catalog_list: list tools in a category or carrying a tag
  - catalog_recent: recent queries of this server session
*/
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/khanglvm/toolbox-search/internal/catalog"
	"github.com/khanglvm/toolbox-search/internal/search"
	"github.com/khanglvm/toolbox-search/internal/tracking"
	"github.com/khanglvm/toolbox-search/internal/version"
)

const protocolVersion = "2024-11-05"

// maxLineSize bounds a single JSON-RPC message.
const maxLineSize = 1 << 20

// Server answers MCP requests against one catalog.
type Server struct {
	catalog  *catalog.Catalog
	session  *search.Session
	tracker  *tracking.Tracker
	defaults Defaults
	logger   *zap.Logger
}

// Defaults apply when a tool call leaves a limit unset.
type Defaults struct {
	MaxResults      int
	SuggestionLimit int
}

// NewServer creates a server. tracker and logger may be nil.
func NewServer(cat *catalog.Catalog, engine *search.Engine, tracker *tracking.Tracker, defaults Defaults, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaults.SuggestionLimit <= 0 {
		defaults.SuggestionLimit = search.DefaultSuggestionLimit
	}
	return &Server{
		catalog:  cat,
		session:  search.NewSession(engine),
		tracker:  tracker,
		defaults: defaults,
		logger:   logger,
	}
}

// Run serves requests read from r and writes responses to w.
// This blocks until r is exhausted.
func (s *Server) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		response, err := s.handleRequest(line)
		if err != nil {
			s.logger.Warn("bad request", zap.Error(err))
			response = &MCPResponse{
				JSONRPC: "2.0",
				Error:   &MCPError{Code: -32700, Message: err.Error()},
			}
		}

		if response != nil {
			if err := s.sendResponse(w, response); err != nil {
				return err
			}
		}
	}

	return scanner.Err()
}

// MCPRequest represents an incoming MCP JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing MCP JSON-RPC response.
type MCPResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *MCPError `json:"error,omitempty"`
}

// MCPError represents an MCP error.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// handleRequest processes one request. Notifications get no response.
func (s *Server) handleRequest(data []byte) (*MCPResponse, error) {
	var req MCPRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid JSON-RPC request: %w", err)
	}

	s.logger.Debug("request", zap.String("method", req.Method))

	switch {
	case req.Method == "initialize":
		return s.handleInitialize(&req), nil
	case req.Method == "tools/list":
		return s.handleToolsList(&req), nil
	case req.Method == "tools/call":
		return s.handleToolsCall(&req), nil
	case req.Method == "ping":
		return &MCPResponse{JSONRPC: "2.0", ID: req.ID, Result: map[string]any{}}, nil
	case strings.HasPrefix(req.Method, "notifications/"):
		return nil, nil
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &MCPError{Code: -32601, Message: "Method not found"},
		}, nil
	}
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    "toolbox-search",
				"version": version.Get().Version,
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"tools": s.toolDefinitions(),
		},
	}
}

func (s *Server) categoryIDs() []string {
	ids := make([]string, len(s.catalog.Categories))
	for i, c := range s.catalog.Categories {
		ids[i] = c.ID
	}
	return ids
}

func (s *Server) toolDefinitions() []map[string]any {
	return []map[string]any{
		{
			"name": "catalog_search",
			"description": fmt.Sprintf(`Search the tool catalog (%d tools) by name, description, category and tags.
Typos are tolerated. Results are ranked best first.

Categories: %s`, s.catalog.Len(), strings.Join(s.categoryIDs(), ", ")),
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query":      map[string]any{"type": "string", "description": "Free-text query"},
					"category":   map[string]any{"type": "string", "enum": s.categoryIDs()},
					"toolType":   map[string]any{"type": "string"},
					"difficulty": map[string]any{"type": "string"},
					"tags":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Item must carry every listed tag"},
					"minRating":  map[string]any{"type": "number", "description": "Items without a rating are excluded"},
					"maxResults": map[string]any{"type": "integer", "minimum": 1},
					"sortBy": map[string]any{
						"type": "string",
						"enum": []string{"relevance", "popularity", "newest", "rating"},
					},
				},
				"required": []string{"query"},
			},
		},
		{
			"name":        "catalog_suggest",
			"description": "Suggest words from tool names, descriptions and tags that complete a prefix.",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prefix": map[string]any{"type": "string"},
					"limit":  map[string]any{"type": "integer", "minimum": 1},
				},
				"required": []string{"prefix"},
			},
		},
		{
			"name":        "catalog_list",
			"description": "List tools in one category or carrying one tag (exact match).",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"category": map[string]any{"type": "string", "enum": s.categoryIDs()},
					"tag":      map[string]any{"type": "string"},
				},
			},
		},
		{
			"name":        "catalog_recent",
			"description": "Recent catalog_search queries of this session, newest first.",
			"inputSchema": map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
	}
}

type searchArgs struct {
	Query      string   `json:"query"`
	Category   string   `json:"category"`
	ToolType   string   `json:"toolType"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
	MinRating  *float64 `json:"minRating"`
	MaxResults int      `json:"maxResults"`
	SortBy     string   `json:"sortBy"`
}

type suggestArgs struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
}

type listArgs struct {
	Category string `json:"category"`
	Tag      string `json:"tag"`
}

// handleToolsCall dispatches a tools/call request.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, -32602, fmt.Sprintf("invalid params: %v", err))
	}
	if len(params.Arguments) == 0 {
		params.Arguments = json.RawMessage("{}")
	}

	var (
		text string
		err  error
	)

	switch params.Name {
	case "catalog_search":
		var args searchArgs
		if err = json.Unmarshal(params.Arguments, &args); err == nil {
			text, err = s.execSearch(args)
		}
	case "catalog_suggest":
		var args suggestArgs
		if err = json.Unmarshal(params.Arguments, &args); err == nil {
			text = s.execSuggest(args)
		}
	case "catalog_list":
		var args listArgs
		if err = json.Unmarshal(params.Arguments, &args); err == nil {
			text, err = s.execList(args)
		}
	case "catalog_recent":
		text = s.execRecent()
	default:
		return errorResponse(req.ID, -32602, fmt.Sprintf("Unknown tool: %s", params.Name))
	}

	if err != nil {
		return errorResponse(req.ID, -32000, err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": text},
			},
		},
	}
}

func errorResponse(id any, code int, message string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &MCPError{Code: code, Message: message},
	}
}

func (s *Server) execSearch(args searchArgs) (string, error) {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return "", fmt.Errorf("query is required")
	}

	filters := &search.Filters{
		Category:   args.Category,
		ToolType:   args.ToolType,
		Difficulty: args.Difficulty,
		Tags:       args.Tags,
		MinRating:  args.MinRating,
		MaxResults: args.MaxResults,
		SortBy:     search.ParseSortMode(args.SortBy),
	}
	if filters.MaxResults <= 0 {
		filters.MaxResults = s.defaults.MaxResults
	}

	resp := s.session.Search(s.catalog, query, filters)
	if s.tracker != nil {
		s.tracker.Track(resp.Analytics)
	}

	if len(resp.Results) == 0 {
		msg := fmt.Sprintf("No tools match '%s'.", query)
		if hints := search.Suggest(query, s.catalog.Items, s.defaults.SuggestionLimit); len(hints) > 0 {
			msg += " Did you mean: " + strings.Join(hints, ", ")
		}
		return msg, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Results for '%s' (%d):\n", query, len(resp.Results))
	for i, r := range resp.Results {
		fmt.Fprintf(&sb, "%d. %s [%s] score=%.1f match=%s\n", i+1, r.Item.Name, r.Item.ID, r.RelevanceScore, r.MatchType)
		s.writeItem(&sb, r.Item)
	}
	return sb.String(), nil
}

func (s *Server) execSuggest(args suggestArgs) string {
	limit := args.Limit
	if limit <= 0 {
		limit = s.defaults.SuggestionLimit
	}
	suggestions := search.Suggest(args.Prefix, s.catalog.Items, limit)
	if len(suggestions) == 0 {
		return "No suggestions."
	}
	return strings.Join(suggestions, "\n")
}

func (s *Server) execList(args listArgs) (string, error) {
	var items []*catalog.Item
	switch {
	case args.Category != "" && args.Tag != "":
		return "", fmt.Errorf("use either category or tag, not both")
	case args.Category != "":
		items = search.SearchByCategory(args.Category, s.catalog.Items)
	case args.Tag != "":
		items = search.SearchByTag(args.Tag, s.catalog.Items)
	default:
		return "", fmt.Errorf("category or tag is required")
	}

	if len(items) == 0 {
		return "No tools found.", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tools (%d):\n", len(items))
	for _, item := range items {
		fmt.Fprintf(&sb, "• %s [%s]\n", item.Name, item.ID)
		s.writeItem(&sb, item)
	}
	return sb.String(), nil
}

func (s *Server) execRecent() string {
	recent := s.session.Recent().Get()
	if len(recent) == 0 {
		return "No recent searches."
	}
	return strings.Join(recent, "\n")
}

func (s *Server) writeItem(sb *strings.Builder, item *catalog.Item) {
	if item.Description != "" {
		fmt.Fprintf(sb, "   %s\n", item.Description)
	}
	fmt.Fprintf(sb, "   category: %s", s.catalog.CategoryName(item.Category))
	if len(item.Tags) > 0 {
		fmt.Fprintf(sb, "; tags: %s", strings.Join(item.Tags, ", "))
	}
	sb.WriteString("\n")
}

// sendResponse writes one JSON-RPC response line.
func (s *Server) sendResponse(w io.Writer, resp *MCPResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
