package vulkan

import (
	"runtime"
	"unsafe"
)

// maxFeatureBools is the VkBool32 count of VkPhysicalDeviceFeatures, the
// largest block.
const maxFeatureBools = 55

// FeatureBlock describes one structure of a feature query chain.
type FeatureBlock struct {
	Name  string
	Type  StructureType
	Count int // VkBool32 members after the header
}

var (
	CoreFeatures     = FeatureBlock{"VkPhysicalDeviceFeatures2", StructureTypePhysicalDeviceFeatures2, 55}
	Vulkan11Features = FeatureBlock{"VkPhysicalDeviceVulkan11Features", StructureTypeVulkan11Features, 12}
	Vulkan12Features = FeatureBlock{"VkPhysicalDeviceVulkan12Features", StructureTypeVulkan12Features, 47}
	Vulkan13Features = FeatureBlock{"VkPhysicalDeviceVulkan13Features", StructureTypeVulkan13Features, 15}
)

// featureStruct is large enough for any block. The driver writes only the
// members the block's type defines.
type featureStruct struct {
	SType StructureType
	PNext unsafe.Pointer
	Bools [maxFeatureBools]uint32
}

// FeatureChain is an ordered list of feature blocks filled by a single
// vkGetPhysicalDeviceFeatures2 call. The first block is always
// CoreFeatures. Blocks are linked through pNext only for the duration of a
// call that reads them.
type FeatureChain struct {
	blocks []FeatureBlock
	data   []*featureStruct
}

// NewFeatureChain returns a chain of CoreFeatures followed by extensions.
func NewFeatureChain(extensions ...FeatureBlock) *FeatureChain {
	c := &FeatureChain{blocks: append([]FeatureBlock{CoreFeatures}, extensions...)}
	for _, b := range c.blocks {
		c.data = append(c.data, &featureStruct{SType: b.Type})
	}
	return c
}

// DefaultFeatureChain queries the Vulkan 1.1, 1.2 and 1.3 feature blocks.
func DefaultFeatureChain() *FeatureChain {
	return NewFeatureChain(Vulkan11Features, Vulkan12Features, Vulkan13Features)
}

// With links and pins the chain, then calls fn with its root.
func (c *FeatureChain) With(fn func(root unsafe.Pointer)) {
	var pin runtime.Pinner
	defer pin.Unpin()
	for i, d := range c.data {
		pin.Pin(d)
		if i+1 < len(c.data) {
			d.PNext = unsafe.Pointer(c.data[i+1])
		}
	}
	defer func() {
		for _, d := range c.data {
			d.PNext = nil
		}
	}()
	fn(unsafe.Pointer(c.data[0]))
}

// Features returns the feature bits of the block of type t, or nil when the
// chain has no such block.
func (c *FeatureChain) Features(t StructureType) []bool {
	for i, b := range c.blocks {
		if b.Type != t {
			continue
		}
		out := make([]bool, b.Count)
		for j := range out {
			out[j] = c.data[i].Bools[j] != 0
		}
		return out
	}
	return nil
}

// Supported counts the features reported for the block of type t.
func (c *FeatureChain) Supported(t StructureType) int {
	n := 0
	for _, on := range c.Features(t) {
		if on {
			n++
		}
	}
	return n
}
