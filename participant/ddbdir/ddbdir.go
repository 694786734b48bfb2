package ddbdir

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
	"github.com/skillarena/backend/participant"
)

// ProfileRow is the participant profile item layout in DynamoDB.
type ProfileRow struct {
	Uuid        string    `dynamo:"uuid,hash"` // Primary key
	DisplayName string    `dynamo:"display_name"`
	AvatarUrl   string    `dynamo:"avatar_url"`
	CreatedAt   time.Time `dynamo:"created_at"`
}

// DynamoDbProfileTable reads participant display metadata from DynamoDB.
type DynamoDbProfileTable struct {
	ddbClient     *dynamodb.Client
	tableName     string
	profilesTable *dynamo.Table
}

// NewDynamoDbProfileTable initializes a new DynamoDbProfileTable.
func NewDynamoDbProfileTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbProfileTable {
	ddb := &DynamoDbProfileTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.profilesTable = &table

	return ddb
}

// GetByIDs batch-reads the profiles for the given participant ids. Missing
// items are not an error; they are simply absent from the result.
func (ddb *DynamoDbProfileTable) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]participant.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]dynamo.Keyed, len(ids))
	for i, id := range ids {
		keys[i] = dynamo.Keys{id.String()}
	}

	var rows []ProfileRow
	err := ddb.profilesTable.Batch("uuid").Get(keys...).All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to batch get profiles: %w", err)
	}

	profiles := make([]participant.Profile, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.Uuid)
		if err != nil {
			return nil, fmt.Errorf("failed to parse profile uuid %q: %w", row.Uuid, err)
		}
		profiles = append(profiles, participant.Profile{
			ID:     id,
			Name:   row.DisplayName,
			Avatar: row.AvatarUrl,
		})
	}
	return profiles, nil
}
