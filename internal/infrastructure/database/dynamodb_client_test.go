package database

import (
	"context"
	"errors"
	"testing"

	appconfig "pannel_pintura/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTables struct {
	describeErr error
	createErr   error
	created     *dynamodb.CreateTableInput
}

func (f *fakeTables) DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{}, f.describeErr
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = in
	return &dynamodb.CreateTableOutput{}, f.createErr
}

func TestEnsureTable(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		f := &fakeTables{}
		created, err := EnsureTable(context.Background(), f, "contact_requests")
		if err != nil || created || f.created != nil {
			t.Fatalf("expected no-op, got created=%v err=%v", created, err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		f := &fakeTables{describeErr: &types.ResourceNotFoundException{Message: aws.String("nope")}}
		created, err := EnsureTable(context.Background(), f, "contact_requests")
		if err != nil || !created {
			t.Fatalf("expected table creation, got created=%v err=%v", created, err)
		}
		if aws.ToString(f.created.TableName) != "contact_requests" || aws.ToString(f.created.KeySchema[0].AttributeName) != "id" {
			t.Fatalf("unexpected create input: %+v", f.created)
		}
	})

	t.Run("created concurrently", func(t *testing.T) {
		f := &fakeTables{
			describeErr: &types.ResourceNotFoundException{},
			createErr:   &types.ResourceInUseException{},
		}
		if created, err := EnsureTable(context.Background(), f, "t"); err != nil || created {
			t.Fatalf("expected in-use to be tolerated, got created=%v err=%v", created, err)
		}
	})

	t.Run("describe failure", func(t *testing.T) {
		boom := errors.New("boom")
		if _, err := EnsureTable(context.Background(), &fakeTables{describeErr: boom}, "t"); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	cfg := &appconfig.Config{AWSRegion: "us-east-1", AWSAccessKeyID: "local", AWSSecretAccessKey: "local", DynamoDBEndpoint: "http://localhost:8000"}
	client, err := ConnectDynamoDB(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(client.Options().BaseEndpoint) != "http://localhost:8000" || client.Options().Region != "us-east-1" {
		t.Fatalf("unexpected options: endpoint=%v region=%s", client.Options().BaseEndpoint, client.Options().Region)
	}
}
