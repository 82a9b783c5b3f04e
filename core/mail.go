package core

import (
	"bytes"
	htmltmpl "html/template"
	"io/fs"
	"net/mail"
	"path"
	"strings"
	"sync"
	texttmpl "text/template"

	"github.com/pkg/errors"

	appfs "github.com/trezcool/classboard/fs"
)

var (
	templates   tmplCache
	templatesMu sync.RWMutex

	emailTemplatesDir = "templates/email"
)

type (
	tmplCacheEntry struct {
		text *texttmpl.Template
		html *htmltmpl.Template
	}
	tmplCache map[string]*tmplCacheEntry // {name: entry}

	EmailMessage struct {
		To      []mail.Address
		Cc      []mail.Address
		Bcc     []mail.Address
		Subject string
		BodyStr string // simple text/plain, non-templated content

		// templated contents
		TemplateName string // without ext
		TemplateData interface{}
		TextContent  string
		HTMLContent  string
	}

	ContextData struct {
		AppName         string
		FrontendBaseURL string
		Data            interface{}
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
		// Wait blocks until every message handed to SendMessages has been processed
		Wait()
	}
)

// ParseEmailTemplates loads the embedded email templates. Each `<name>.txt` and `<name>.gohtml`
// is parsed together with the matching `_base` layout.
func ParseEmailTemplates(logger Logger) {
	parsed, err := parseTemplates(appfs.FS, emailTemplatesDir)
	if err != nil {
		logger.Error("parsing email templates", err)
	}
	templatesMu.Lock()
	templates = parsed
	templatesMu.Unlock()
}

func parseTemplates(fsys fs.FS, dir string) (tmplCache, error) {
	cache := make(tmplCache)
	fps, err := fs.Glob(fsys, path.Join(dir, "*"))
	if err != nil {
		return cache, errors.Wrap(err, "globbing templates")
	}

	for _, fp := range fps {
		fname := path.Base(fp)
		ext := path.Ext(fname)
		if strings.HasPrefix(fname, "_") || !(ext == ".txt" || ext == ".gohtml") {
			continue
		}
		name := strings.TrimSuffix(fname, ext)
		entry, ok := cache[name]
		if !ok {
			entry = new(tmplCacheEntry)
			cache[name] = entry
		}
		if ext == ".txt" {
			tmpl, err := texttmpl.ParseFS(fsys, path.Join(dir, "_base.txt"), fp)
			if err != nil {
				return cache, errors.Wrapf(err, "parsing %s", fname)
			}
			entry.text = tmpl.Option("missingkey=error")
		} else {
			tmpl, err := htmltmpl.ParseFS(fsys, path.Join(dir, "_base.gohtml"), fp)
			if err != nil {
				return cache, errors.Wrapf(err, "parsing %s", fname)
			}
			entry.html = tmpl.Option("missingkey=error")
		}
	}
	return cache, nil
}

func (m *EmailMessage) getTemplate() *tmplCacheEntry {
	templatesMu.RLock()
	defer templatesMu.RUnlock()
	return templates[m.TemplateName]
}

// Render fills TextContent and HTMLContent from BodyStr or the message template.
func (m *EmailMessage) Render(appName, frontendBaseURL string) error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
	}
	if m.TemplateName == "" {
		return nil
	}
	entry := m.getTemplate()
	if entry == nil {
		return errors.Errorf("email template %q not found", m.TemplateName)
	}

	data := ContextData{AppName: appName, FrontendBaseURL: frontendBaseURL, Data: m.TemplateData}
	var buff bytes.Buffer
	if entry.text != nil && m.BodyStr == "" {
		if err := entry.text.Execute(&buff, data); err != nil {
			return errors.Wrap(err, "rendering text template")
		}
		m.TextContent = buff.String()
		buff.Reset()
	}
	if entry.html != nil {
		if err := entry.html.Execute(&buff, data); err != nil {
			return errors.Wrap(err, "rendering html template")
		}
		m.HTMLContent = buff.String()
	}
	return nil
}

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return (m.TextContent != "") || (m.HTMLContent != "") }
