package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/alfagnish/users-gateway/internal/users"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "users.v1.UserService"

// Full method names, as they appear on the wire.
const (
	MethodListUsers = "/" + ServiceName + "/ListUsers"
	MethodListAges  = "/" + ServiceName + "/ListAges"
	MethodListNames = "/" + ServiceName + "/ListNames"
	MethodListIds   = "/" + ServiceName + "/ListIds"
)

// UserServiceServer is the server API for UserService. Every method takes
// an empty request and answers with a list of structs carrying the same
// keys the HTTP surface emits.
type UserServiceServer interface {
	ListUsers(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListAges(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListNames(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListIds(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

// UserService implements UserServiceServer over a users.Table.
type UserService struct {
	table *users.Table
}

var _ UserServiceServer = (*UserService)(nil)

// NewUserService creates a UserService backed by the given table.
func NewUserService(table *users.Table) *UserService {
	return &UserService{table: table}
}

func (s *UserService) ListUsers(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return s.project(users.ProjectionAll)
}

func (s *UserService) ListAges(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return s.project(users.ProjectionAges)
}

func (s *UserService) ListNames(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return s.project(users.ProjectionNames)
}

func (s *UserService) ListIds(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return s.project(users.ProjectionIDs)
}

func (s *UserService) project(p users.Projection) (*structpb.ListValue, error) {
	rows, err := s.table.Rows(p)
	if err != nil {
		if errors.Is(err, users.ErrUnknownProjection) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	values := make([]*structpb.Value, 0, len(rows))
	for _, row := range rows {
		st, err := structpb.NewStruct(row)
		if err != nil {
			return nil, status.Error(codes.Internal, fmt.Sprintf("encode row: %v", err))
		}
		values = append(values, structpb.NewStructValue(st))
	}
	return &structpb.ListValue{Values: values}, nil
}

// RegisterUserServiceServer registers srv on the given gRPC registrar.
func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserServiceDesc, srv)
}

// UserServiceDesc describes UserService for grpc.Server. The messages are
// protobuf well-known types, so the default proto codec carries them.
var UserServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListUsers", Handler: unaryHandler(MethodListUsers, UserServiceServer.ListUsers)},
		{MethodName: "ListAges", Handler: unaryHandler(MethodListAges, UserServiceServer.ListAges)},
		{MethodName: "ListNames", Handler: unaryHandler(MethodListNames, UserServiceServer.ListNames)},
		{MethodName: "ListIds", Handler: unaryHandler(MethodListIds, UserServiceServer.ListIds)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "users/v1/users.proto",
}

type listMethod func(UserServiceServer, context.Context, *emptypb.Empty) (*structpb.ListValue, error)

// unaryHandler adapts a UserServiceServer method expression to the
// grpc.MethodDesc handler signature, honouring any interceptor chain.
func unaryHandler(fullMethod string, call listMethod) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(emptypb.Empty)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(UserServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(UserServiceServer), ctx, req.(*emptypb.Empty))
		}
		return interceptor(ctx, in, info, handler)
	}
}
