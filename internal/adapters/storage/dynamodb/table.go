package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// table agrupa las operaciones de una tabla con clave de partición simple.
type table struct {
	api  API
	name string
	pk   string
}

func (t table) key(id string) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(map[string]string{t.pk: id})
}

// get decodifica el item en v; false si no existe.
func (t table) get(ctx context.Context, id string, v any) (bool, error) {
	key, err := t.key(id)
	if err != nil {
		return false, err
	}
	out, err := t.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key:       key,
	})
	if err != nil {
		return false, err
	}
	if out.Item == nil {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(out.Item, v)
}

func (t table) create(ctx context.Context, item any) error {
	return t.put(ctx, item, expression.AttributeNotExists(expression.Name(t.pk)), errors.New("dynamodb: item already exists"))
}

// replace sobrescribe sólo si el item existe; si no, devuelve notFound.
func (t table) replace(ctx context.Context, item any, notFound error) error {
	return t.put(ctx, item, expression.AttributeExists(expression.Name(t.pk)), notFound)
}

func (t table) put(ctx context.Context, item any, cond expression.ConditionBuilder, onConflict error) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return err
	}

	_, err = t.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return onConflict
	}
	return err
}

// scanAll recorre la tabla completa (todas las páginas) con filtro opcional.
func scanAll[T any](ctx context.Context, api API, tableName string, filter *expression.ConditionBuilder) ([]T, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(tableName)}
	if filter != nil {
		expr, err := expression.NewBuilder().WithFilter(*filter).Build()
		if err != nil {
			return nil, err
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	out := make([]T, 0)
	p := dynamodb.NewScanPaginator(api, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}
