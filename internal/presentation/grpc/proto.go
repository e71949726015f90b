package grpc

// proto.go defines the gRPC server interface derived from
// coverbank/underwriting/v1/underwriting.proto. This file serves as a
// stand-in for buf-generated code. Once `buf generate` is run, replace this
// file with the import from the generated package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnderwritingServiceServer is the server API for UnderwritingService.
// It mirrors the proto-generated interface from coverbank.underwriting.v1.UnderwritingService.
type UnderwritingServiceServer interface {
	EvaluateApplication(context.Context, *EvaluateApplicationRequest) (*EvaluateApplicationResponse, error)
	GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error)
	ListRuleResults(context.Context, *ListRuleResultsRequest) (*ListRuleResultsResponse, error)
	mustEmbedUnimplementedUnderwritingServiceServer()
}

// UnimplementedUnderwritingServiceServer provides forward-compatible default implementations.
type UnimplementedUnderwritingServiceServer struct{}

func (UnimplementedUnderwritingServiceServer) EvaluateApplication(context.Context, *EvaluateApplicationRequest) (*EvaluateApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateApplication not implemented")
}
func (UnimplementedUnderwritingServiceServer) GetApplication(context.Context, *GetApplicationRequest) (*GetApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplication not implemented")
}
func (UnimplementedUnderwritingServiceServer) ListRuleResults(context.Context, *ListRuleResultsRequest) (*ListRuleResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRuleResults not implemented")
}
func (UnimplementedUnderwritingServiceServer) mustEmbedUnimplementedUnderwritingServiceServer() {}

// RegisterUnderwritingServiceServer registers the UnderwritingServiceServer with the gRPC server.
func RegisterUnderwritingServiceServer(s *grpclib.Server, srv UnderwritingServiceServer) {
	s.RegisterService(&_UnderwritingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _UnderwritingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "coverbank.underwriting.v1.UnderwritingService",
	HandlerType: (*UnderwritingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "EvaluateApplication", Handler: _UnderwritingService_EvaluateApplication_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetApplication", Handler: _UnderwritingService_GetApplication_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ListRuleResults", Handler: _UnderwritingService_ListRuleResults_Handler},         //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _UnderwritingService_EvaluateApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).EvaluateApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coverbank.underwriting.v1.UnderwritingService/EvaluateApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).EvaluateApplication(ctx, req.(*EvaluateApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _UnderwritingService_GetApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).GetApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coverbank.underwriting.v1.UnderwritingService/GetApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).GetApplication(ctx, req.(*GetApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _UnderwritingService_ListRuleResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRuleResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).ListRuleResults(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/coverbank.underwriting.v1.UnderwritingService/ListRuleResults",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UnderwritingServiceServer).ListRuleResults(ctx, req.(*ListRuleResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}
