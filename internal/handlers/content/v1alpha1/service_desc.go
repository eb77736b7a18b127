package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgcontent.v1alpha1.ContentService"

// Method names of ContentService
const (
	MethodListRaces          = "ListRaces"
	MethodGetRace            = "GetRace"
	MethodInspectWeapon      = "InspectWeapon"
	MethodCreateDraft        = "CreateDraft"
	MethodGetDraft           = "GetDraft"
	MethodDeleteDraft        = "DeleteDraft"
	MethodSelectRace         = "SelectRace"
	MethodClearRace          = "ClearRace"
	MethodEquipWeapon        = "EquipWeapon"
	MethodUnequipWeapon      = "UnequipWeapon"
	MethodInspectDraftWeapon = "InspectDraftWeapon"
	MethodFinalizeDraft      = "FinalizeDraft"
	MethodGetCharacter       = "GetCharacter"
	MethodListCharacters     = "ListCharacters"
)

// FullMethod returns the invoke path of a ContentService method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ContentServiceServer is the server API for ContentService.
// Every request and response is a google.protobuf.Struct.
type ContentServiceServer interface {
	ListRaces(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRace(context.Context, *structpb.Struct) (*structpb.Struct, error)
	InspectWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectRace(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearRace(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnequipWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	InspectDraftWeapon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FinalizeDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterContentServiceServer registers srv on s
func RegisterContentServiceServer(s grpc.ServiceRegistrar, srv ContentServiceServer) {
	s.RegisterService(&ContentServiceDesc, srv)
}

type unaryMethod func(ContentServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv interface{},
			ctx context.Context,
			dec func(interface{}) error,
			interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ContentServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(ContentServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ContentServiceDesc is the grpc.ServiceDesc for ContentService
var ContentServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ContentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodListRaces, ContentServiceServer.ListRaces),
		unaryHandler(MethodGetRace, ContentServiceServer.GetRace),
		unaryHandler(MethodInspectWeapon, ContentServiceServer.InspectWeapon),
		unaryHandler(MethodCreateDraft, ContentServiceServer.CreateDraft),
		unaryHandler(MethodGetDraft, ContentServiceServer.GetDraft),
		unaryHandler(MethodDeleteDraft, ContentServiceServer.DeleteDraft),
		unaryHandler(MethodSelectRace, ContentServiceServer.SelectRace),
		unaryHandler(MethodClearRace, ContentServiceServer.ClearRace),
		unaryHandler(MethodEquipWeapon, ContentServiceServer.EquipWeapon),
		unaryHandler(MethodUnequipWeapon, ContentServiceServer.UnequipWeapon),
		unaryHandler(MethodInspectDraftWeapon, ContentServiceServer.InspectDraftWeapon),
		unaryHandler(MethodFinalizeDraft, ContentServiceServer.FinalizeDraft),
		unaryHandler(MethodGetCharacter, ContentServiceServer.GetCharacter),
		unaryHandler(MethodListCharacters, ContentServiceServer.ListCharacters),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgcontent/v1alpha1/content.proto",
}

// ContentServiceClient is the client API for ContentService
type ContentServiceClient interface {
	Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type contentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewContentServiceClient creates a client over cc
func NewContentServiceClient(cc grpc.ClientConnInterface) ContentServiceClient {
	return &contentServiceClient{cc: cc}
}

// Call invokes a unary ContentService method by name
func (c *contentServiceClient) Call(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
