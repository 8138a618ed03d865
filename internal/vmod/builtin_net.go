package vmod

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

// RPCConn is the adopted carrier for an open gRPC client connection,
// a single carrier struct dispatched through this runtime's exposer
// rather than a second evaluator's type switch.
type RPCConn struct {
	Conn *grpc.ClientConn
}

// NetRPCMembers populates the net.rpc module's globals: dial, call,
// and close.
func NetRPCMembers(set func(name string, v object.Value) error) error {
	fns := map[string]object.Value{
		"dial":  nativeFunc(rpcDial),
		"call":  nativeFunc(rpcCall),
		"close": nativeFunc(rpcClose),
	}
	for name, fn := range fns {
		if err := set(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// dial(target) connects without TLS verification — this module
// demonstrates the call protocol over a real network-shaped
// dependency (SPEC_FULL.md's domain-stack wiring table), not a
// hardened RPC client; a host embedding this runtime in production
// supplies its own transport credentials.
func rpcDial(args []object.Value, names []string) (object.Value, *exc.Exception) {
	if len(names) != 0 || len(args) != 1 {
		return nil, exc.New(exc.TypeErrorKind, "dial() takes exactly one positional argument")
	}
	target, ok := args[0].(object.Str)
	if !ok {
		return nil, exc.New(exc.TypeErrorKind, "dial() target must be a string")
	}
	conn, err := grpc.NewClient(string(target), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, exc.New(exc.RuntimeError, "net.rpc.dial: %v", err)
	}
	return &RPCConn{Conn: conn}, nil
}

// call(conn, method, payload) issues one unary RPC, marshalling
// payload (a dict) to a google.protobuf.Struct and the reply back to
// a dict — a generic wire shape that needs no generated .pb.go code
// for this module to exercise grpc+protobuf end to end.
func rpcCall(args []object.Value, names []string) (object.Value, *exc.Exception) {
	if len(names) != 0 || len(args) != 3 {
		return nil, exc.New(exc.TypeErrorKind, "call() takes exactly 3 positional arguments")
	}
	conn, ok := args[0].(*RPCConn)
	if !ok {
		return nil, exc.New(exc.TypeErrorKind, "call() first argument must be a connection returned by dial()")
	}
	method, ok := args[1].(object.Str)
	if !ok {
		return nil, exc.New(exc.TypeErrorKind, "call() method name must be a string")
	}
	payload, err := dictToStruct(args[2])
	if err != nil {
		return nil, exc.New(exc.ValueErrorKind, "call() payload: %v", err)
	}

	reply := &structpb.Struct{}
	if err := conn.Conn.Invoke(context.Background(), string(method), payload, reply); err != nil {
		return nil, exc.New(exc.RuntimeError, "net.rpc.call: %v", err)
	}
	return structToDict(reply), nil
}

func rpcClose(args []object.Value, names []string) (object.Value, *exc.Exception) {
	if len(names) != 0 || len(args) != 1 {
		return nil, exc.New(exc.TypeErrorKind, "close() takes exactly one positional argument")
	}
	conn, ok := args[0].(*RPCConn)
	if !ok {
		return nil, exc.New(exc.TypeErrorKind, "close() argument must be a connection returned by dial()")
	}
	if conn.Conn == nil {
		return object.None, nil
	}
	err := conn.Conn.Close()
	conn.Conn = nil
	if err != nil {
		return nil, exc.New(exc.RuntimeError, "net.rpc.close: %v", err)
	}
	return object.None, nil
}

func dictToStruct(v object.Value) (*structpb.Struct, error) {
	m, ok := v.(*object.Map)
	if !ok {
		return nil, errNotADict
	}
	fields := make(map[string]any)
	it := object.NewIterator(m)
	for {
		k, val, ok := it.Next()
		if !ok {
			break
		}
		key, ok := k.(object.Str)
		if !ok {
			return nil, errNotADict
		}
		fields[string(key)] = goValue(val)
	}
	return structpb.NewStruct(fields)
}

func structToDict(s *structpb.Struct) *object.Map {
	m := object.NewMap(structHash, structEq)
	for k, v := range s.AsMap() {
		m.Set(object.Str(k), valueOf(v))
	}
	return m
}

// goValue/valueOf bridge the minimal scalar set google.protobuf.Struct
// supports and this runtime's Value carriers; anything richer belongs
// in a host's own generated-message binding, not this demonstration
// module.
func goValue(v object.Value) any {
	switch x := v.(type) {
	case object.Str:
		return string(x)
	case int64:
		return float64(x)
	case float64:
		return x
	case bool:
		return x
	default:
		return nil
	}
}

func valueOf(v any) object.Value {
	switch x := v.(type) {
	case string:
		return object.Str(x)
	case float64:
		return x
	case bool:
		return x
	case nil:
		return object.None
	default:
		return object.None
	}
}
