package dictionaries

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// BigQuerySource reads words from a single string column of a BigQuery table.
type BigQuerySource struct {
	Project  string
	Table    string // fully qualified, e.g. "project.dataset.words"
	Column   string
	Location string
}

func (s BigQuerySource) query() string {
	col := s.Column
	if col == "" {
		col = "word"
	}
	return fmt.Sprintf("SELECT %s FROM `%s`", col, s.Table)
}

func (s BigQuerySource) Words(ctx context.Context) ([]string, error) {
	if s.Project == "" || s.Table == "" {
		return nil, errors.New("bigquery source needs a project and a table")
	}

	client, err := bigquery.NewClient(ctx, s.Project)
	if err != nil {
		return nil, errors.Wrap(err, "bigquery.NewClient")
	}
	defer client.Close()

	q := client.Query(s.query())
	if s.Location != "" {
		q.Location = s.Location
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "q.Run")
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "job.Wait")
	}
	if err := status.Err(); err != nil {
		return nil, errors.Wrap(err, "status.Err")
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "job.Read")
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "it.Next")
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, errors.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}
