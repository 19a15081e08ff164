package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client holds the gRPC connection to a UserService.
type Client struct {
	conn *grpc.ClientConn
}

// NewClient dials the UserService at the given address. The connection is
// established in the background (no blocking dial).
func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn}, nil
}

// ListUsers returns every record as generic field maps.
func (c *Client) ListUsers(ctx context.Context) ([]map[string]interface{}, error) {
	return c.list(ctx, MethodListUsers)
}

// ListAges returns [{age}, ...].
func (c *Client) ListAges(ctx context.Context) ([]map[string]interface{}, error) {
	return c.list(ctx, MethodListAges)
}

// ListNames returns [{name}, ...].
func (c *Client) ListNames(ctx context.Context) ([]map[string]interface{}, error) {
	return c.list(ctx, MethodListNames)
}

// ListIds returns [{id}, ...].
func (c *Client) ListIds(ctx context.Context) ([]map[string]interface{}, error) {
	return c.list(ctx, MethodListIds)
}

func (c *Client) list(ctx context.Context, method string) ([]map[string]interface{}, error) {
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(ctx, method, &emptypb.Empty{}, out); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	rows := make([]map[string]interface{}, 0, len(out.GetValues()))
	for i, v := range out.GetValues() {
		st := v.GetStructValue()
		if st == nil {
			return nil, fmt.Errorf("%s: element %d is not a struct", method, i)
		}
		rows = append(rows, st.AsMap())
	}
	return rows, nil
}

// Conn returns the underlying gRPC client connection.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

// Close closes the underlying gRPC connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
