package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain is reported in the ErrorInfo detail of every converted error
const errorDomain = "rpg-content"

// ToGRPCError converts an error to a gRPC status error.
// Metadata travels as an ErrorInfo detail with stringified values.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		if len(customErr.Meta) > 0 {
			info := &errdetails.ErrorInfo{
				Reason:   customErr.Code.String(),
				Domain:   errorDomain,
				Metadata: make(map[string]string, len(customErr.Meta)),
			}
			for k, v := range customErr.Meta {
				info.Metadata[k] = fmt.Sprint(v)
			}
			if withDetails, detailErr := st.WithDetails(info); detailErr == nil {
				st = withDetails
			}
		}

		return st.Err()
	}

	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		for k, v := range info.GetMetadata() {
			customErr.WithMeta(k, v)
		}
		break
	}

	return customErr
}
