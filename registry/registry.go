// Package registry 进程内的文件登记表：
// 上传时登记，之后只读，进程重启即清空，可选 TTL 过期
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zooyer/dwgdash"
)

// Entry 一份已解析图纸的登记信息，登记后不可变
type Entry struct {
	ID         string            `json:"id"`
	Filename   string            `json:"filename"`
	FileType   string            `json:"file_type"`
	Size       int64             `json:"file_size"`
	UploadTime time.Time         `json:"upload_time"`
	Doc        *dwgdash.Document `json:"-"`
}

// FileRegistry 文件登记表接口，便于测试替换
type FileRegistry interface {
	Put(filename, fileType string, size int64, doc *dwgdash.Document) *Entry
	Get(id string) (*Entry, bool)
	Delete(id string) bool
	List() []*Entry
}

// MemoryRegistry 内存实现，RWMutex 保护；
// Document 登记后只读，多个请求可并发读取同一快照
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string
	ttl     time.Duration // 0 表示不过期
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *MemoryRegistry {
	return &MemoryRegistry{
		entries: make(map[string]*Entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *MemoryRegistry) Put(filename, fileType string, size int64, doc *dwgdash.Document) *Entry {
	entry := &Entry{
		ID:         uuid.NewString(),
		Filename:   filename,
		FileType:   fileType,
		Size:       size,
		UploadTime: r.now(),
		Doc:        doc,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = entry
	r.order = append(r.order, entry.ID)

	return entry
}

func (r *MemoryRegistry) Get(id string) (*Entry, bool) {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if r.expired(entry) {
		r.Delete(id)
		return nil, false
	}
	return entry, true
}

func (r *MemoryRegistry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	for i, key := range r.order {
		if key == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// List 按登记顺序返回未过期条目
func (r *MemoryRegistry) List() []*Entry {
	r.mu.RLock()
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	r.mu.RUnlock()

	entries := make([]*Entry, 0, len(ids))
	for _, id := range ids {
		if entry, ok := r.Get(id); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (r *MemoryRegistry) expired(entry *Entry) bool {
	return r.ttl > 0 && r.now().Sub(entry.UploadTime) > r.ttl
}
