package mysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cases := []struct {
		name        string
		uri         string
		wantDBName  string
		wantTimeout time.Duration
		wantParams  map[string]string
	}{
		{
			name:       "bare_dsn",
			uri:        "survey:secret@tcp(localhost:3306)/survey",
			wantDBName: "survey",
		},
		{
			name:        "keeps_existing_params",
			uri:         "survey:secret@tcp(localhost:3306)/survey?timeout=5s&sql_mode=TRADITIONAL",
			wantDBName:  "survey",
			wantTimeout: 5 * time.Second,
			wantParams:  map[string]string{"sql_mode": "TRADITIONAL"},
		},
		{
			name:       "overrides_parse_time",
			uri:        "survey:secret@tcp(localhost:3306)/survey?parseTime=false&loc=Local",
			wantDBName: "survey",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := parseConfig(tc.uri)
			require.NoError(t, err)

			assert.True(t, cfg.ParseTime)
			assert.Equal(t, time.UTC, cfg.Loc)
			assert.Equal(t, tc.wantDBName, cfg.DBName)
			assert.Equal(t, "localhost:3306", cfg.Addr)
			assert.Equal(t, tc.wantTimeout, cfg.Timeout)
			for k, v := range tc.wantParams {
				assert.Equal(t, v, cfg.Params[k])
			}
		})
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := parseConfig("survey:secret@tcp(localhost:3306)/survey?timeout=forever")
	assert.ErrorContains(t, err, "parsing MySQL DSN")
}
