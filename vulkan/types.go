package vulkan

import (
	"fmt"
	"unsafe"
)

// StructureType is a VkStructureType value.
type StructureType uint32

const (
	StructureTypeApplicationInfo         StructureType = 0
	StructureTypeInstanceCreateInfo      StructureType = 1
	StructureTypeDeviceQueueCreateInfo   StructureType = 2
	StructureTypeDeviceCreateInfo        StructureType = 3
	StructureTypeVulkan11Features        StructureType = 49
	StructureTypeVulkan12Features        StructureType = 51
	StructureTypeVulkan13Features        StructureType = 53
	StructureTypePhysicalDeviceFeatures2 StructureType = 1000059000
	StructureTypeQueueFamilyProperties2  StructureType = 1000059005
)

// Result is a VkResult value. Negative values are errors.
type Result int32

const Success Result = 0

const queueGraphicsBit = 0x1

// MakeAPIVersion packs a Vulkan API version.
func MakeAPIVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// APIVersion13 is the version requested when creating the instance.
var APIVersion13 = MakeAPIVersion(1, 3, 0)

// VersionString formats a packed API version.
func VersionString(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>22, v>>12&0x3ff, v&0xfff)
}

// The structures below mirror the C layouts on 64-bit platforms.

type applicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   *byte
	ApplicationVersion uint32
	PEngineName        *byte
	EngineVersion      uint32
	APIVersion         uint32
}

type instanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	PApplicationInfo        *applicationInfo
	EnabledLayerCount       uint32
	PPEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PPEnabledExtensionNames **byte
}

type deviceQueueCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

type deviceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *deviceQueueCreateInfo
	EnabledLayerCount       uint32
	PPEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PPEnabledExtensionNames **byte
	PEnabledFeatures        unsafe.Pointer
}

type queueFamilyProperties2 struct {
	SType                       StructureType
	PNext                       unsafe.Pointer
	QueueFlags                  uint32
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity [3]uint32
}
