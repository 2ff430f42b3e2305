package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/career-recommender/internal/config"
	"github.com/stretchr/testify/require"
)

const testCorpusCSV = `Career,Skills Required,Description,Learning Path,Projects,Resources,Resume Keywords,Domain
Data Scientist,python;sql;machine learning;statistics,Builds predictive models,Python;Statistics,Churn model,Kaggle,data science,Data
Data Engineer,python;sql;spark;airflow,Maintains data pipelines,SQL;Spark,ETL pipeline,,data engineering,Data
Frontend Developer,html;css;javascript;react,Builds web interfaces,HTML;React,Portfolio site,MDN,frontend,Web
Cloud Engineer,aws;docker;kubernetes;terraform,Runs cloud infrastructure,Linux;AWS,Deploy a cluster,,devops,Cloud
ML Engineer,python;machine learning;docker,Deploys models to production,Python;MLOps,Model API,,mlops,Data
`

// writeTestCorpus writes the fixture corpus into a temp dir and returns its path
func writeTestCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "careers.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCorpusCSV), 0644))
	return path
}

// newTestEngine loads the fixture corpus with the overlap scorer
func newTestEngine(t *testing.T, out io.Writer) *engine {
	t.Helper()
	cfg := config.Defaults()
	cfg.Corpus = writeTestCorpus(t)
	cfg.Strategy = "overlap"
	cfg.TopK = 2
	cfg.OutDir = t.TempDir()

	eng, err := loadEngine(cfg, out)
	require.NoError(t, err)
	return eng
}
