package graph

import "github.com/birdduck/regraph/rgerrors"

func errNodeNotFound(id string) error {
	return rgerrors.Hierarchy("graph: node %q not found", id)
}

func errEmptyMergeSet() error {
	return rgerrors.ReGraph("graph: merge requires a non-empty set of node ids")
}

func errNodeAlreadyExists(id string) error {
	return rgerrors.ReGraph("graph: node %q already exists", id)
}
