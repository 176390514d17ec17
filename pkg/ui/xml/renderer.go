// Package xml provides machine-readable XML output built with etree
package xml

import (
	"io"
	"strconv"

	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/arthur-debert/minifiles/pkg/ui/report"
	"github.com/beevik/etree"
)

// Renderer writes one XML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderListings writes a <listings> document with one <listing> per directory
func (r *Renderer) RenderListings(listings []explorer.Listing) error {
	doc, root := newDocument("listings")
	for _, l := range listings {
		el := root.CreateElement("listing")
		el.CreateAttr("dir", l.Dir)
		for _, line := range l.Lines {
			el.CreateElement("line").SetText(line)
		}
	}
	return r.write(doc)
}

// RenderPlan writes the plan grouped by source directory
func (r *Renderer) RenderPlan(plan []types.Action) error {
	doc, root := newDocument("plan")
	for _, g := range report.NewPlanDocument(plan).Groups {
		group := root.CreateElement("group")
		group.CreateAttr("dir", g.Dir)
		for _, a := range g.Actions {
			actionElement(group, a)
		}
	}
	return r.write(doc)
}

// RenderResults writes one <result> per executed action
func (r *Renderer) RenderResults(results []types.ActionResult) error {
	doc, root := newDocument("results")
	for _, d := range report.NewResultDocuments(results) {
		el := root.CreateElement("result")
		el.CreateAttr("success", strconv.FormatBool(d.Success))
		el.CreateAttr("skipped", strconv.FormatBool(d.Skipped))
		el.CreateAttr("duration_ms", strconv.FormatInt(d.DurationMS, 10))
		actionElement(el, d.Action)
		if d.Error != "" {
			e := el.CreateElement("error")
			e.CreateAttr("code", d.Code)
			e.SetText(d.Error)
		}
		if d.Message != "" {
			el.CreateElement("message").SetText(d.Message)
		}
	}
	return r.write(doc)
}

// RenderError writes an <error> document
func (r *Renderer) RenderError(err error) error {
	doc, root := newDocument("error")
	root.SetText(err.Error())
	return r.write(doc)
}

// RenderMessage writes a <message> document
func (r *Renderer) RenderMessage(msg string) error {
	doc, root := newDocument("message")
	root.SetText(msg)
	return r.write(doc)
}

func newDocument(rootTag string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc, doc.CreateElement(rootTag)
}

func actionElement(parent *etree.Element, a types.Action) {
	el := parent.CreateElement("action")
	el.CreateAttr("kind", string(a.Kind))
	if a.From != "" {
		el.CreateAttr("from", a.From)
	}
	if a.To != "" {
		el.CreateAttr("to", a.To)
	}
	if a.TrashTo != "" {
		el.CreateAttr("trash_to", a.TrashTo)
	}
}

func (r *Renderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.output)
	return err
}
