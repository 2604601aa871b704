package richtextify

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/riverfjs/richtextify-go/internal/attr"
	"github.com/riverfjs/richtextify-go/internal/media"
)

// Process 完整管道：源文档 → 样式文本 + 已获取的媒体
//
// 步骤：
// 1. 按 Format 解析源文档并转换为样式文本
// 2. 按顺序遍历媒体占位符，相同 ID 只获取一次：
//   - 有 URL → 通过 Provider 获取，成功时记录固有尺寸
//   - 获取失败或没有 URL → 使用 Provider 的占位图
//
// 3. 返回新的样式文本（原有 Run 不被修改）和媒体列表
//
// 只有解析失败会返回 error；获取失败汇总在 Document.FetchErr 中。
func Process(ctx context.Context, source string, opts ...Option) (*Document, error) {
	options := applyOptions(opts...)
	root, err := parse(source, options)
	if err != nil {
		return nil, err
	}
	text := newConverter(options.Config).Convert(root, SeedAttributes(options.Config))

	provider := options.Provider
	if provider == nil {
		fc := options.Config.Fetch
		provider = media.NewHTTPProvider(fc.Timeout, fc.UserAgent, fc.MaxBytes)
	}
	doc, err := ResolveMedia(ctx, text, provider, options.Logger)
	if err != nil {
		return nil, err
	}
	doc.config = options.Config
	return doc, nil
}

// ResolveMedia fetches every placeholder in text. It returns an error only
// when ctx is done; fetch failures are recorded per item and in FetchErr.
func ResolveMedia(ctx context.Context, text Text, provider Provider, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc := &Document{
		Text:  make(Text, len(text)),
		Media: make(map[string]*MediaItem),
	}

	for i, run := range text {
		doc.Text[i] = run
		p := run.Attrs.Media()
		if p == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item, seen := doc.Media[p.ID]
		if !seen {
			item = fetchItem(ctx, p, provider, log)
			doc.Media[p.ID] = item
			doc.Items = append(doc.Items, item)
			if item.Err != nil {
				doc.FetchErr = multierr.Append(doc.FetchErr, item.Err)
			}
		}
		if item.Placeholder != p {
			doc.Text[i] = Run{Text: run.Text, Attrs: run.Attrs.With(attr.Media{Placeholder: item.Placeholder})}
		}
	}
	return doc, nil
}

func fetchItem(ctx context.Context, p *Placeholder, provider Provider, log *zap.Logger) *MediaItem {
	item := &MediaItem{Placeholder: p}
	if p.URL == nil {
		log.Debug("Media has no url, using placeholder", zap.String("id", p.ID), zap.Stringer("kind", p.Kind))
		item.Media = provider.Placeholder(p)
		return item
	}

	m, err := provider.Fetch(ctx, p.URL)
	if err != nil {
		log.Warn("Unable to fetch media, using placeholder", zap.String("url", p.URL.String()), zap.Error(err))
		item.Err = err
		item.Media = provider.Placeholder(p)
		return item
	}
	item.Media = m
	if m.Dimensions != nil {
		item.Placeholder = p.Resolved(*m.Dimensions)
	}
	log.Debug("Fetched media", zap.String("url", p.URL.String()), zap.String("mime", m.MIME), zap.Int("bytes", len(m.Data)))
	return item
}
