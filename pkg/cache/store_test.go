package cache_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/babelgateco/babelgate/pkg/cache"
)

var _ = Describe("Key", func() {
	It("is deterministic", func() {
		a := cache.Key("gpt-4o-mini", "English", "French", "Hello")
		b := cache.Key("gpt-4o-mini", "English", "French", "Hello")
		Expect(a).To(Equal(b))
	})

	It("changes with any component", func() {
		base := cache.Key("gpt-4o-mini", "English", "French", "Hello")
		Expect(cache.Key("gpt-4o", "English", "French", "Hello")).NotTo(Equal(base))
		Expect(cache.Key("gpt-4o-mini", "German", "French", "Hello")).NotTo(Equal(base))
		Expect(cache.Key("gpt-4o-mini", "English", "Spanish", "Hello")).NotTo(Equal(base))
		Expect(cache.Key("gpt-4o-mini", "English", "French", "Hello!")).NotTo(Equal(base))
	})

	It("does not collide on shifted boundaries", func() {
		a := cache.Key("ab", "c", "d", "e")
		b := cache.Key("a", "bc", "d", "e")
		Expect(a).NotTo(Equal(b))
	})
})

// behavesLikeAStore asserts the Store contract against any backend.
func behavesLikeAStore(newStore func() cache.Store) {
	var (
		store cache.Store
		ctx   context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = newStore()
	})

	AfterEach(func() {
		if store != nil {
			store.Close()
		}
	})

	It("stores and retrieves an entry", func() {
		entry := cache.NewEntry("gpt-4o-mini", "English", "French", "Hello", "Bonjour")
		Expect(store.Put(ctx, entry)).To(Succeed())

		retrieved, err := store.Get(ctx, entry.Key)
		Expect(err).NotTo(HaveOccurred())
		Expect(retrieved.Translated).To(Equal("Bonjour"))
		Expect(retrieved.Input).To(Equal("Hello"))
		Expect(retrieved.Model).To(Equal("gpt-4o-mini"))
	})

	It("preserves the translated text verbatim", func() {
		entry := cache.NewEntry("gpt-4o-mini", "English", "French", "Hi", "  Salut\n")
		Expect(store.Put(ctx, entry)).To(Succeed())

		retrieved, err := store.Get(ctx, entry.Key)
		Expect(err).NotTo(HaveOccurred())
		Expect(retrieved.Translated).To(Equal("  Salut\n"))
	})

	It("returns ErrNotFound for a missing key", func() {
		_, err := store.Get(ctx, "nonexistent")
		Expect(err).To(BeAssignableToTypeOf(cache.ErrNotFound{}))
	})

	It("reports existence via Has", func() {
		entry := cache.NewEntry("gpt-4o-mini", "English", "French", "Hello", "Bonjour")

		has, err := store.Has(ctx, entry.Key)
		Expect(err).NotTo(HaveOccurred())
		Expect(has).To(BeFalse())

		Expect(store.Put(ctx, entry)).To(Succeed())

		has, err = store.Has(ctx, entry.Key)
		Expect(err).NotTo(HaveOccurred())
		Expect(has).To(BeTrue())
	})

	It("deduplicates by key", func() {
		first := cache.NewEntry("gpt-4o-mini", "English", "French", "Hello", "Bonjour")
		second := cache.NewEntry("gpt-4o-mini", "English", "French", "Hello", "Salut")
		Expect(first.Key).To(Equal(second.Key))

		Expect(store.Put(ctx, first)).To(Succeed())
		Expect(store.Put(ctx, second)).To(Succeed())

		count, err := store.Len(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))

		// First write wins.
		retrieved, err := store.Get(ctx, first.Key)
		Expect(err).NotTo(HaveOccurred())
		Expect(retrieved.Translated).To(Equal("Bonjour"))
	})

	It("counts entries", func() {
		count, err := store.Len(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(0))

		Expect(store.Put(ctx, cache.NewEntry("m", "en", "fr", "one", "un"))).To(Succeed())
		Expect(store.Put(ctx, cache.NewEntry("m", "en", "fr", "two", "deux"))).To(Succeed())

		count, err = store.Len(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})
}

var _ = Describe("MemoryStore", func() {
	behavesLikeAStore(func() cache.Store {
		return cache.NewMemoryStore()
	})
})

var _ = Describe("SQLiteStore", func() {
	behavesLikeAStore(func() cache.Store {
		store, err := cache.NewSQLiteStore(":memory:")
		Expect(err).NotTo(HaveOccurred())
		return store
	})

	It("creates a database file on disk", func() {
		tmpDir := GinkgoT().TempDir()
		dbPath := filepath.Join(tmpDir, "cache.db")

		store, err := cache.NewSQLiteStore(dbPath)
		Expect(err).NotTo(HaveOccurred())
		defer store.Close()

		_, err = os.Stat(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	It("persists entries across reopen", func() {
		tmpDir := GinkgoT().TempDir()
		dbPath := filepath.Join(tmpDir, "cache.db")

		store, err := cache.NewSQLiteStore(dbPath)
		Expect(err).NotTo(HaveOccurred())

		entry := cache.NewEntry("gpt-4o-mini", "English", "French", "Hello", "Bonjour")
		Expect(store.Put(context.Background(), entry)).To(Succeed())
		Expect(store.Close()).To(Succeed())

		reopened, err := cache.NewSQLiteStore(dbPath)
		Expect(err).NotTo(HaveOccurred())
		defer reopened.Close()

		retrieved, err := reopened.Get(context.Background(), entry.Key)
		Expect(err).NotTo(HaveOccurred())
		Expect(retrieved.Translated).To(Equal("Bonjour"))
	})
})
