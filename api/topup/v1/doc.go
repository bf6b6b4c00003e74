// Package topupv1 holds the protobuf messages and gRPC bindings for topup.v1.LedgerService.
package topupv1

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative topup/v1/ledger.proto
