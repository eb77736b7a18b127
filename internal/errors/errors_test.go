package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-content/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "race not found",
			expected: "NOT_FOUND: race not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "face is not offered",
			expected: "INVALID_ARGUMENT: face is not offered",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to get draft")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to get draft", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	original := errors.NotFound("race not found").WithMeta("race_id", "unicorn")
	wrapped := errors.Wrap(original, "failed to select race")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("unicorn", wrapped.Meta["race_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	original := errors.NotFound("weapon kind not found").WithMeta("kind", "laser")
	wrapped := errors.WrapWithCode(original, errors.CodeFailedPrecondition, "equipped weapon is unknown")

	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Equal("laser", wrapped.Meta["kind"])
	s.True(errors.Is(wrapped, errors.FailedPrecondition("")))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestHelpers() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("bad face", errors.GetMessage(errors.InvalidArgument("bad face")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgumentf("bad %s", "face")))
	s.True(errors.IsAlreadyExists(errors.AlreadyExistsf("race %s", "griffon")))
	s.True(errors.IsFailedPrecondition(errors.FailedPreconditionf("race %s", "griffon")))
	s.True(errors.IsInternal(errors.Internalf("boom %d", 1)))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	err := errors.NotFound("race not found").WithMeta("race_id", "unicorn")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("race not found", st.Message())

	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Equal("unicorn", info.GetMetadata()["race_id"])

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsNotFound(back))
	s.Equal("race not found", errors.GetMessage(back))
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlain() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
