package llm

import (
	"context"
	"fmt"

	llmv1 "github.com/recallkit/recallkit/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client by calling the LLM sidecar service.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient connects to the LLM sidecar at addr.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Complete sends the conversation to the sidecar and returns the full
// completion. Cancellation and deadlines propagate through ctx.
func (c *GRPCClient) Complete(ctx context.Context, messages []Message, opts Options) (*Completion, error) {
	req := &llmv1.CompleteRequest{
		Messages: toProtoMessages(messages),
	}
	if opts.Temperature > 0 {
		temp := float32(opts.Temperature)
		req.Temperature = &temp
	}
	if opts.MaxTokens > 0 {
		max := int32(opts.MaxTokens)
		req.MaxTokens = &max
	}

	resp, err := c.client.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gRPC Complete call failed: %w", err)
	}

	out := &Completion{
		Text:       resp.GetText(),
		StopReason: resp.GetStopReason(),
	}
	if usage := resp.GetUsage(); usage != nil {
		out.Usage = Usage{
			InputTokens:  int(usage.GetInputTokens()),
			OutputTokens: int(usage.GetOutputTokens()),
		}
	}
	return out, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toProtoMessages(messages []Message) []*llmv1.ChatMessage {
	out := make([]*llmv1.ChatMessage, len(messages))
	for i, m := range messages {
		out[i] = &llmv1.ChatMessage{
			Role:    toProtoRole(m.Role),
			Content: m.Content,
		}
	}
	return out
}

func toProtoRole(r Role) llmv1.ChatMessage_Role {
	switch r {
	case RoleSystem:
		return llmv1.ChatMessage_ROLE_SYSTEM
	case RoleUser:
		return llmv1.ChatMessage_ROLE_USER
	case RoleAssistant:
		return llmv1.ChatMessage_ROLE_ASSISTANT
	default:
		return llmv1.ChatMessage_ROLE_USER
	}
}
