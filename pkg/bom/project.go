package bom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/activestate/bomgen/pkg/config"
	"github.com/activestate/bomgen/pkg/errors"
)

// Namespace and schema attributes of a Maven 4.0.0 POM.
const (
	NamespacePOM   = "http://maven.apache.org/POM/4.0.0"
	NamespaceXSI   = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation = NamespacePOM + " https://maven.apache.org/xsd/maven-4.0.0.xsd"

	ModelVersion = "4.0.0"
	Packaging    = "pom"

	// ArtifactSuffix is appended to the project name to form the artifactId.
	ArtifactSuffix = "-bom"
)

// Project is a BOM document. Field order matches element order on output.
type Project struct {
	ModelVersion         string               `xml:"modelVersion"`
	GroupID              string               `xml:"groupId"`
	ArtifactID           string               `xml:"artifactId"`
	Version              string               `xml:"version"`
	Packaging            string               `xml:"packaging"`
	Name                 string               `xml:"name"`
	Description          string               `xml:"description"`
	DependencyManagement DependencyManagement `xml:"dependencyManagement"`
}

// DependencyManagement is the <dependencyManagement> block.
type DependencyManagement struct {
	Dependencies Dependencies `xml:"dependencies"`
}

// Dependencies is the <dependencies> list. It is always emitted, even empty.
type Dependencies struct {
	Dependency []Dependency `xml:"dependency"`
}

// Dependency is one pinned coordinate.
type Dependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// Options control the BOM's own coordinates. Empty fields take the
// config package defaults.
type Options struct {
	GroupID     string
	Version     string
	Description string
}

// NewProject builds the BOM for projectName listing entries in order.
func NewProject(projectName string, opts Options, entries []Entry) *Project {
	if opts.GroupID == "" {
		opts.GroupID = config.DefaultGroupID
	}
	if opts.Version == "" {
		opts.Version = config.DefaultVersion
	}
	if opts.Description == "" {
		opts.Description = config.DefaultDescription
	}

	artifactID := projectName + ArtifactSuffix
	p := &Project{
		ModelVersion: ModelVersion,
		GroupID:      opts.GroupID,
		ArtifactID:   artifactID,
		Version:      opts.Version,
		Packaging:    Packaging,
		Name:         artifactID,
		Description:  opts.Description,
	}

	deps := make([]Dependency, len(entries))
	for i, e := range entries {
		deps[i] = Dependency{GroupID: e.GroupID, ArtifactID: e.ArtifactID, Version: e.Version}
	}
	p.DependencyManagement.Dependencies.Dependency = deps
	return p
}

// Dependencies returns the managed dependencies.
func (p *Project) Dependencies() []Dependency {
	return p.DependencyManagement.Dependencies.Dependency
}

// document adds the namespace attributes that only matter on output.
type document struct {
	XMLName        xml.Name `xml:"project"`
	Xmlns          string   `xml:"xmlns,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	*Project
}

// Write serializes p as indented UTF-8 XML with a declaration.
func Write(w io.Writer, p *Project) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	err := enc.Encode(document{
		Xmlns:          NamespacePOM,
		XmlnsXSI:       NamespaceXSI,
		SchemaLocation: SchemaLocation,
		Project:        p,
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, "\n")
	return err
}

// OutputPath returns where p lives in the repository at root:
// root/<groupId as dirs>/<artifactId>/<version>/<artifactId>-<version>.pom.
func OutputPath(root string, p *Project) string {
	groupDir := filepath.FromSlash(strings.ReplaceAll(p.GroupID, ".", "/"))
	return filepath.Join(root, groupDir, p.ArtifactID, p.Version, p.ArtifactID+"-"+p.Version+".pom")
}

// WriteFile writes p to [OutputPath], creating directories as needed and
// replacing any existing file. It returns the path written.
func WriteFile(root string, p *Project) (string, error) {
	path := OutputPath(root, p)

	var buf bytes.Buffer
	if err := Write(&buf, p); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode %s", p.ArtifactID)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrap(errors.ErrCodeFilesystem, err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeFilesystem, err, "write %s", path)
	}
	return path, nil
}

// Read parses a BOM document.
func Read(r io.Reader) (*Project, error) {
	var doc struct {
		XMLName xml.Name `xml:"project"`
		Project
	}
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode bom")
	}
	return &doc.Project, nil
}

// ReadFile parses the BOM at path.
func ReadFile(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "open %s", path)
	}
	defer f.Close()

	p, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
