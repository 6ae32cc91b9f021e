package taxonomy

import "github.com/heartmarshall/company-directory/internal/domain"

// Tree renders the forest of tax down to maxDepth levels. Roots are level 0,
// so maxDepth 0 yields an empty forest and maxDepth 1 yields the roots only.
func Tree(tax *domain.Taxonomy, maxDepth int) []domain.ActivityNode {
	return children(tax, nil, 0, maxDepth)
}

func children(tax *domain.Taxonomy, parentID *int64, depth, maxDepth int) []domain.ActivityNode {
	if depth >= maxDepth {
		return []domain.ActivityNode{}
	}

	kids := tax.Children(parentID)
	nodes := make([]domain.ActivityNode, 0, len(kids))
	for _, a := range kids {
		id := a.ID
		nodes = append(nodes, domain.ActivityNode{
			ID:       a.ID,
			Name:     a.Name,
			ParentID: a.ParentID,
			Children: children(tax, &id, depth+1, maxDepth),
		})
	}
	return nodes
}

// Descendants returns id plus every activity at most maxDepth levels below it.
// An id that is not in tax yields an empty set.
func Descendants(tax *domain.Taxonomy, id int64, maxDepth int) domain.IDSet {
	out := domain.NewIDSet()
	if _, ok := tax.Get(id); !ok {
		return out
	}
	out.Add(id)
	collect(tax, id, 0, maxDepth, out)
	return out
}

func collect(tax *domain.Taxonomy, id int64, depth, maxDepth int, out domain.IDSet) {
	if depth >= maxDepth {
		return
	}
	for _, child := range tax.Children(&id) {
		out.Add(child.ID)
		collect(tax, child.ID, depth+1, maxDepth, out)
	}
}

// DescendantsForNameMatch unions Descendants over every activity whose name
// contains pattern, ignoring case.
func DescendantsForNameMatch(tax *domain.Taxonomy, pattern string, maxDepth int) domain.IDSet {
	out := domain.NewIDSet()
	for _, a := range tax.MatchName(pattern) {
		out.Union(Descendants(tax, a.ID, maxDepth))
	}
	return out
}
