package grpcserver

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial connects to a ledgerd instance and blocks until the connection is ready or ctx ends.
func Dial(ctx context.Context, address string, insecureTransport bool, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	dialOptions := make([]grpc.DialOption, 0, len(extra)+1)
	if insecureTransport {
		dialOptions = append(dialOptions, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		dialOptions = append(dialOptions, grpc.WithTransportCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}
	dialOptions = append(dialOptions, extra...)
	conn, err := grpc.NewClient(address, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("connect ledger: %w", err)
	}
	conn.Connect()
	if err := WaitForClientReady(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect ledger: %w", err)
	}
	return conn, nil
}

// WaitForClientReady blocks until conn is Ready.
func WaitForClientReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if state == connectivity.Shutdown {
			return errors.New("grpc connection shutdown before ready")
		}
		if !conn.WaitForStateChange(ctx, state) {
			if err := ctx.Err(); err != nil {
				return err
			}
			return errors.New("grpc connection failed to reach ready state")
		}
	}
}
