package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/feature/yaml"
	"github.com/pbanos/sapling/loader/csv"
	"github.com/pbanos/sapling/loader/mongoloader"
	"github.com/pbanos/sapling/loader/sqlloader"
	"github.com/pbanos/sapling/tree"
	"github.com/pbanos/sapling/tree/dot"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput              string
	metadataInput          string
	table                  string
	collection             string
	output                 string
	dotOutput              string
	memoryIntensiveDataset bool
	indexedDataset         bool
}

type inputKind int

const (
	csvInput inputKind = iota
	sqlite3Input
	postgreSQLInput
	mongoDBInput
)

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a dataset",
		Long:  `Grow a classification tree from a dataset of categorical features and print it.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			var md *feature.Metadata
			if config.metadataInput != "" {
				md, err = yaml.ReadMetadataFromFile(config.metadataInput)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(2)
				}
			}
			d, featureNames, err := config.trainingSet(cmd.Context(), md)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Growing tree from a dataset with %d records and %d features ...", d.Count(), len(featureNames))
			t, err := (&sapling.Grower{Logger: logger(config.verbose)}).Grow(d, featureNames)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(8)
			}
			config.Logf("Done")
			err = outputTree(config.output, cmd.OutOrStdout(), t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(9)
			}
			if config.dotOutput != "" {
				config.Logf("Writing graph of the tree to %s ...", config.dotOutput)
				err = dot.WriteFile(config.dotOutput, t)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(10)
				}
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features and label of the input, in order (required for MongoDB)")
	cmd.PersistentFlags().StringVar(&(config.table), "table", "samples", "name of the table with the data on SQL databases")
	cmd.PersistentFlags().StringVar(&(config.collection), "collection", "samples", "name of the collection with the data on MongoDB databases")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.dotOutput), "dot", "", "path to a file to which a Graphviz DOT graph of the generated tree will be written")
	cmd.PersistentFlags().BoolVar(&(config.memoryIntensiveDataset), "memory-intensive", false, "force the use of memory-intensive datasets, which copy records on every split")
	cmd.PersistentFlags().BoolVar(&(config.indexedDataset), "indexed", false, "force the use of indexed datasets, which share records among splits to decrease memory use")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.memoryIntensiveDataset && gcc.indexedDataset {
		return fmt.Errorf("cannot set both memory-intensive and indexed flags at the same time")
	}
	switch gcc.inputKind() {
	case sqlite3Input, postgreSQLInput:
		if gcc.table == "" {
			return fmt.Errorf("table flag cannot be empty for SQL inputs")
		}
	case mongoDBInput:
		if gcc.metadataInput == "" {
			return fmt.Errorf("metadata flag is required for MongoDB inputs")
		}
		if gcc.collection == "" {
			return fmt.Errorf("collection flag cannot be empty for MongoDB inputs")
		}
	}
	return nil
}

func (gcc *growCmdConfig) inputKind() inputKind {
	switch {
	case strings.HasPrefix(gcc.dataInput, "postgresql://"), strings.HasPrefix(gcc.dataInput, "postgres://"):
		return postgreSQLInput
	case strings.HasPrefix(gcc.dataInput, "mongodb://"):
		return mongoDBInput
	case strings.HasSuffix(gcc.dataInput, ".db"):
		return sqlite3Input
	}
	return csvInput
}

func (gcc *growCmdConfig) datasetGenerator() dataset.Generator {
	if gcc.memoryIntensiveDataset {
		return dataset.NewMemoryIntensive
	}
	if gcc.indexedDataset {
		return dataset.NewIndexed
	}
	return dataset.New
}

func (gcc *growCmdConfig) trainingSet(ctx context.Context, md *feature.Metadata) (dataset.Dataset, []string, error) {
	g := gcc.datasetGenerator()
	switch gcc.inputKind() {
	case postgreSQLInput:
		gcc.Logf("Reading training set from table %s of PostgreSQL database...", gcc.table)
		db, err := sqlloader.OpenPostgreSQL(gcc.dataInput)
		if err != nil {
			return nil, nil, err
		}
		defer db.Close()
		return sqlloader.Read(ctx, db, gcc.table, md, g)
	case sqlite3Input:
		gcc.Logf("Reading training set from table %s of SQLite3 file %s...", gcc.table, gcc.dataInput)
		db, err := sqlloader.OpenSQLite3(gcc.dataInput)
		if err != nil {
			return nil, nil, err
		}
		defer db.Close()
		return sqlloader.Read(ctx, db, gcc.table, md, g)
	case mongoDBInput:
		gcc.Logf("Reading training set from collection %s of MongoDB database...", gcc.collection)
		session, err := mongoloader.Dial(gcc.dataInput)
		if err != nil {
			return nil, nil, err
		}
		defer session.Close()
		return mongoloader.Read(ctx, session, gcc.collection, md, g)
	}
	if gcc.dataInput == "" {
		gcc.Logf("Reading training set from STDIN...")
	} else {
		gcc.Logf("Reading training set from %s...", gcc.dataInput)
	}
	return csv.ReadDatasetFromFilePath(gcc.dataInput, md, g)
}

func outputTree(outputPath string, stdout io.Writer, t tree.Tree) error {
	if outputPath == "" {
		_, err := io.WriteString(stdout, t.String())
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %v", outputPath, err)
	}
	defer f.Close()
	_, err = io.WriteString(f, t.String())
	if err != nil {
		return fmt.Errorf("writing tree to %s: %v", outputPath, err)
	}
	return nil
}
