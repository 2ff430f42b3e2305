package ranking

import (
	"github.com/jonathan/career-recommender/internal/corpus"
	"github.com/jonathan/career-recommender/internal/types"
)

func exampleCorpus() *corpus.Corpus {
	return corpus.New([]types.CareerRecord{
		{Career: "Data Scientist", Skills: "python;sql;machine learning", Description: "Builds predictive models"},
		{Career: "Frontend Developer", Skills: "html;css;javascript", Description: "Builds web interfaces"},
	})
}

func wideCorpus() *corpus.Corpus {
	return corpus.New([]types.CareerRecord{
		{Career: "Data Scientist", Skills: "python;sql;machine learning;statistics", Description: "Builds predictive models", Domain: "Data"},
		{Career: "Data Engineer", Skills: "python;sql;spark;airflow", Description: "Maintains data pipelines", Domain: "Data"},
		{Career: "Frontend Developer", Skills: "html;css;javascript;react", Description: "Builds web interfaces", Domain: "Web"},
		{Career: "Cloud Engineer", Skills: "aws;docker;kubernetes;terraform", Description: "Runs cloud infrastructure", Domain: "Cloud"},
		{Career: "ML Engineer", Skills: "python;machine learning;docker", Description: "Deploys models to production", Domain: "Data"},
	})
}

func careers(recs []types.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Career
	}
	return out
}
