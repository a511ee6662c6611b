package render

import (
	"bytes"
	"testing"
)

func TestRenderSVGProducesSVGMarkup(t *testing.T) {
	dot := "graph {\n  node [margin=0 shape=circle style=filled]\n  0 -- 1\n}\n"
	svg, err := RenderSVG(dot)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("output missing <svg> tag: %s", svg)
	}
}

func TestRenderSVGRejectsInvalidDOT(t *testing.T) {
	if _, err := RenderSVG("not a graph at all {"); err == nil {
		t.Fatal("expected an error for malformed DOT input")
	}
}
