package latex

// CatalogEntry is one pre-formatted reference.
type CatalogEntry struct {
	Key       string
	Reference string
}

// Catalog is a fixed lookup table of references keyed by citation key. It is
// independent of any parsed .bib file. Iteration order is declaration order.
type Catalog struct {
	entries []CatalogEntry
	index   map[string]int
}

// NewCatalog builds a catalog from entries. Later duplicates of a key are ignored.
func NewCatalog(entries []CatalogEntry) Catalog {
	c := Catalog{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if _, dup := c.index[e.Key]; dup {
			continue
		}
		c.index[e.Key] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

// Lookup returns the formatted reference for key.
func (c Catalog) Lookup(key string) (string, bool) {
	i, ok := c.index[key]
	if !ok {
		return "", false
	}
	return c.entries[i].Reference, true
}

// Entries returns the catalog in its fixed order.
func (c Catalog) Entries() []CatalogEntry {
	return append([]CatalogEntry(nil), c.entries...)
}

// Len returns the number of entries.
func (c Catalog) Len() int { return len(c.entries) }

// DefaultCatalog is the hand-maintained reference table shipped with texsite.
func DefaultCatalog() Catalog {
	return NewCatalog([]CatalogEntry{
		{"wertz2011space", "Wertz, J. R., Everett, D. F., & Puschell, J. J. (2011). <em>Space Mission Analysis and Design</em>. Microcosm Press."},
		{"nasa2019europa", "NASA JPL. (2019). Europa Clipper Mission: Overview. <em>NASA Technical Publication</em>, 2019-220449."},
		{"chien2005autonomous", "Chien, S., Sherwood, R., & Tran, D. (2005). Autonomous science operations for the Mars Express mission. <em>IEEE Transactions on Aerospace and Electronic Systems</em>, 41(4), 1324-1340."},
		{"thornton2009radiometric", "Thornton, C. L., & Border, J. S. (2009). <em>Radiometric tracking techniques for deep-space navigation</em>. Wiley-Interscience."},
		{"bhaskaran2012autonomous", "Bhaskaran, S., Desai, S., & Dumont, P. (2012). Autonomous optical navigation for interplanetary missions. <em>Journal of Guidance, Control, and Dynamics</em>, 35(4), 1166-1176."},
		{"owen2011optical", "Owen, W. M., Vaughan, A. T., & Synnott, S. P. (2011). Optical navigation for proximity operations at asteroid Vesta. <em>AAS/AIAA Astrodynamics Specialist Conference</em>."},
		{"izzo2019machine", "Izzo, D., Märtens, M., & Pan, B. (2019). A survey of machine learning applications to spacecraft operations. <em>Acta Astronautica</em>, 162, 401-418."},
		{"calinon2016tutorial", "Calinon, S. (2016). A tutorial on task-parameterized movement learning and retrieval. <em>Intelligent Service Robotics</em>, 9(1), 1-29."},
		{"pervez2017learning", "Pervez, A., & Lee, D. (2017). Learning deep movement primitives using convolutional neural networks. <em>2017 IEEE-RAS 17th International Conference on Humanoid Robotics</em>, 191-197."},
		{"silverstein2018gaussian", "Silverstein, B., & Crassidis, J. L. (2018). Gaussian mixture model-based spacecraft attitude estimation. <em>Journal of Guidance, Control, and Dynamics</em>, 41(6), 1408-1415."},
	})
}
