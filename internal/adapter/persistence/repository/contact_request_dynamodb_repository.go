package repository

import (
	"context"
	"errors"
	"time"

	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContactRequestsTableName = "contact_requests"

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

type contactRequestItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email"`
	Phone       string `dynamodbav:"phone"`
	ProjectType string `dynamodbav:"project_type"`
	Property    string `dynamodbav:"property"`
	Area        string `dynamodbav:"area"`
	Timeline    string `dynamodbav:"timeline"`
	Message     string `dynamodbav:"message,omitempty"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ContactRequestDynamoRepository persists leads in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Lead volume is small; List scans with an optional status filter.
type ContactRequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IContactRequestRepository = (*ContactRequestDynamoRepository)(nil)

func NewContactRequestDynamoRepository(ddb DynamoAPI, tableName string) *ContactRequestDynamoRepository {
	if tableName == "" {
		tableName = defaultContactRequestsTableName
	}
	return &ContactRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContactRequestDynamoRepository) Create(ctx context.Context, c entities.ContactRequest) (entities.ContactRequest, error) {
	av, err := attributevalue.MarshalMap(toContactRequestItem(c))
	if err != nil {
		return entities.ContactRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ContactRequest{}, err
	}
	return c, nil
}

func (r *ContactRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContactRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContactRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContactRequest{}, nil
	}
	return unmarshalContactRequest(out.Item)
}

func (r *ContactRequestDynamoRepository) List(ctx context.Context, status entities.ContactRequestStatus) ([]entities.ContactRequest, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	out := make([]entities.ContactRequest, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			c, err := unmarshalContactRequest(item)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}

// UpdateStatus moves a lead from one status to another. A missing lead, or
// one no longer in from, yields an empty ContactRequest.
func (r *ContactRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ContactRequestStatus) (entities.ContactRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContactRequest{}, nil
		}
		return entities.ContactRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ContactRequest{}, nil
	}
	return unmarshalContactRequest(out.Attributes)
}

func unmarshalContactRequest(av map[string]types.AttributeValue) (entities.ContactRequest, error) {
	var it contactRequestItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.ContactRequest{}, err
	}
	return fromContactRequestItem(it), nil
}

func toContactRequestItem(c entities.ContactRequest) contactRequestItem {
	return contactRequestItem{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		ProjectType: c.ProjectType,
		Property:    c.Property,
		Area:        c.Area,
		Timeline:    c.Timeline,
		Message:     c.Message,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContactRequestItem(it contactRequestItem) entities.ContactRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ContactRequest{
		ID:          it.ID,
		Name:        it.Name,
		Email:       it.Email,
		Phone:       it.Phone,
		ProjectType: it.ProjectType,
		Property:    it.Property,
		Area:        it.Area,
		Timeline:    it.Timeline,
		Message:     it.Message,
		Status:      entities.ContactRequestStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
