package data

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog/log"
)

// DefaultURL is a public copy of the Pima Indians diabetes table with the
// nine-column header.
const DefaultURL = "https://raw.githubusercontent.com/plotly/datasets/master/diabetes.csv"

// ErrFetch reports a failed network read of the dataset.
var ErrFetch = errors.New("fetch failed")

// ReadCSV parses a headered CSV where every column is numeric.
func ReadCSV(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, df.Err)
	}
	return fromFrame(df)
}

// Open reads the table from a local CSV file.
func Open(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// Fetch downloads the CSV at url with a single GET. There is no retry.
func Fetch(ctx context.Context, client *http.Client, url string) (*Table, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, url, resp.Status)
	}
	log.Debug().Str("url", url).Int64("bytes", resp.ContentLength).Msg("fetched dataset")
	return ReadCSV(resp.Body)
}

// Load fetches src when it is an http(s) URL and opens it as a file otherwise.
func Load(ctx context.Context, src string) (*Table, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return Fetch(ctx, nil, src)
	}
	return Open(src)
}
