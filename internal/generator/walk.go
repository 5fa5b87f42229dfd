package generator

// WalkSections visits every section in the tree depth-first, passing
// the nesting depth (top level is 0). Renderers and metadata
// derivation share this instead of growing their own recursion.
func WalkSections(sections []ArticleSection, visit func(depth int, s *ArticleSection)) {
	walkSections(sections, 0, visit)
}

func walkSections(sections []ArticleSection, depth int, visit func(depth int, s *ArticleSection)) {
	for i := range sections {
		visit(depth, &sections[i])
		walkSections(sections[i].Subsections, depth+1, visit)
	}
}
