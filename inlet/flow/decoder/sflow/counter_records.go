// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

package sflow

const (
	CounterRecordIfCounters CounterRecordKind = iota + 1
	CounterRecordEthernetCounters
	CounterRecordTokenRingCounters
	CounterRecordVGCounters
	CounterRecordVLANCounters
	CounterRecordProcessorCounters
	CounterRecordRadioUtilization
	CounterRecordOpenflowPort
	CounterRecordHostDescr
	CounterRecordHostAdapters
	CounterRecordHostParent
	CounterRecordHostCPU
	CounterRecordHostMemory
	CounterRecordHostDiskIO
	CounterRecordHostNetIO
	CounterRecordVirtNode
	CounterRecordVirtCPU
	CounterRecordVirtMemory
	CounterRecordVirtDiskIO
	CounterRecordVirtNetIO
	CounterRecordAppResources
)

// IfCounters is the generic interface counter block every sFlow agent
// reports for each sampled interface (counter format 1).
type IfCounters struct {
	IfIndex            uint32
	IfType             uint32
	IfSpeed            uint64
	IfDirection        uint32
	IfStatus           uint32
	IfInOctets         uint64
	IfInUcastPkts      uint32
	IfInMulticastPkts  uint32
	IfInBroadcastPkts  uint32
	IfInDiscards       uint32
	IfInErrors         uint32
	IfInUnknownProtos  uint32
	IfOutOctets        uint64
	IfOutUcastPkts     uint32
	IfOutMulticastPkts uint32
	IfOutBroadcastPkts uint32
	IfOutDiscards      uint32
	IfOutErrors        uint32
	IfPromiscuousMode  uint32
}

func decodeIfCounters(c *cursor, _ Limits) (CounterRecord, error) {
	var v IfCounters
	var err error
	if v.IfIndex, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfType, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfSpeed, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfDirection, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfStatus, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfInOctets, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfInUcastPkts, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfInMulticastPkts, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfInBroadcastPkts, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfInDiscards, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfInErrors, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfInUnknownProtos, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfOutOctets, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfOutUcastPkts, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfOutMulticastPkts, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfOutBroadcastPkts, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfOutDiscards, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfOutErrors, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.IfPromiscuousMode, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordIfCounters, IfCounters: &v}, nil
}

// EthernetCounters is the dot3 MIB counter block (counter format 2).
type EthernetCounters struct {
	AlignmentErrors           uint32
	FCSErrors                 uint32
	SingleCollisionFrames     uint32
	MultipleCollisionFrames   uint32
	SQETestErrors             uint32
	DeferredTransmissions     uint32
	LateCollisions            uint32
	ExcessiveCollisions       uint32
	InternalMacTransmitErrors uint32
	CarrierSenseErrors        uint32
	FrameTooLongs             uint32
	InternalMacReceiveErrors  uint32
	SymbolErrors              uint32
}

func decodeEthernetCounters(c *cursor, _ Limits) (CounterRecord, error) {
	fields := make([]uint32, 13)
	for i := range fields {
		v, err := c.readU32()
		if err != nil {
			return CounterRecord{}, err
		}
		fields[i] = v
	}
	return CounterRecord{Kind: CounterRecordEthernetCounters, EthernetCounters: &EthernetCounters{
		AlignmentErrors: fields[0], FCSErrors: fields[1], SingleCollisionFrames: fields[2],
		MultipleCollisionFrames: fields[3], SQETestErrors: fields[4], DeferredTransmissions: fields[5],
		LateCollisions: fields[6], ExcessiveCollisions: fields[7], InternalMacTransmitErrors: fields[8],
		CarrierSenseErrors: fields[9], FrameTooLongs: fields[10], InternalMacReceiveErrors: fields[11],
		SymbolErrors: fields[12],
	}}, nil
}

// TokenRingCounters is the dot5 MIB counter block (counter format 3).
type TokenRingCounters struct {
	LineErrors        uint32
	BurstErrors       uint32
	ACErrors          uint32
	AbortTransErrors  uint32
	InternalErrors    uint32
	LostFrameErrors   uint32
	ReceiveCongestions uint32
	FrameCopiedErrors uint32
	TokenErrors       uint32
	SoftErrors        uint32
	HardErrors        uint32
	SignalLoss        uint32
	TransmitBeacons   uint32
	Recoverys         uint32
	LobeWires         uint32
	Removes           uint32
	Singles           uint32
	FreqErrors        uint32
}

func decodeTokenRingCounters(c *cursor, _ Limits) (CounterRecord, error) {
	fields := make([]uint32, 18)
	for i := range fields {
		v, err := c.readU32()
		if err != nil {
			return CounterRecord{}, err
		}
		fields[i] = v
	}
	return CounterRecord{Kind: CounterRecordTokenRingCounters, TokenRingCounters: &TokenRingCounters{
		LineErrors: fields[0], BurstErrors: fields[1], ACErrors: fields[2], AbortTransErrors: fields[3],
		InternalErrors: fields[4], LostFrameErrors: fields[5], ReceiveCongestions: fields[6],
		FrameCopiedErrors: fields[7], TokenErrors: fields[8], SoftErrors: fields[9], HardErrors: fields[10],
		SignalLoss: fields[11], TransmitBeacons: fields[12], Recoverys: fields[13], LobeWires: fields[14],
		Removes: fields[15], Singles: fields[16], FreqErrors: fields[17],
	}}, nil
}

// VGCounters is the 100BaseVG (dot12) MIB counter block (counter format 4).
type VGCounters struct {
	InHighPriorityFrames      uint32
	InHighPriorityOctets      uint64
	InNormPriorityFrames      uint32
	InNormPriorityOctets      uint64
	InIPMErrors               uint32
	InOversizeFrameErrors     uint32
	InDataErrors              uint32
	InNullAddressedFrames     uint32
	OutHighPriorityFrames     uint32
	OutHighPriorityOctets     uint64
	TransitionIntoTrainings   uint32
	HCInHighPriorityOctets    uint64
	HCInNormPriorityOctets    uint64
	HCOutHighPriorityOctets   uint64
}

func decodeVGCounters(c *cursor, _ Limits) (CounterRecord, error) {
	var v VGCounters
	var err error
	if v.InHighPriorityFrames, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.InHighPriorityOctets, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.InNormPriorityFrames, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.InNormPriorityOctets, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.InIPMErrors, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.InOversizeFrameErrors, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.InDataErrors, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.InNullAddressedFrames, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.OutHighPriorityFrames, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.OutHighPriorityOctets, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.TransitionIntoTrainings, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.HCInHighPriorityOctets, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.HCInNormPriorityOctets, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.HCOutHighPriorityOctets, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordVGCounters, VGCounters: &v}, nil
}

// VLANCounters is per-VLAN traffic counters (counter format 5).
type VLANCounters struct {
	VLANID        uint32
	Octets        uint64
	UcastPkts     uint32
	MulticastPkts uint32
	BroadcastPkts uint32
	Discards      uint32
}

func decodeVLANCounters(c *cursor, _ Limits) (CounterRecord, error) {
	var v VLANCounters
	var err error
	if v.VLANID, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.Octets, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.UcastPkts, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.MulticastPkts, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.BroadcastPkts, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.Discards, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordVLANCounters, VLANCounters: &v}, nil
}

// ProcessorCounters reports host CPU load and memory as seen by the
// exporting device itself (counter format 1001).
type ProcessorCounters struct {
	CPU5s        int32
	CPU1m        int32
	CPU5m        int32
	TotalMemory  uint64
	FreeMemory   uint64
}

func decodeProcessorCounters(c *cursor, _ Limits) (CounterRecord, error) {
	var v ProcessorCounters
	var err error
	if v.CPU5s, err = c.readI32(); err != nil {
		return CounterRecord{}, err
	}
	if v.CPU1m, err = c.readI32(); err != nil {
		return CounterRecord{}, err
	}
	if v.CPU5m, err = c.readI32(); err != nil {
		return CounterRecord{}, err
	}
	if v.TotalMemory, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.FreeMemory, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordProcessorCounters, ProcessorCounters: &v}, nil
}

// RadioUtilization reports channel occupancy for a radio interface
// (counter format 1002).
type RadioUtilization struct {
	ElapsedTime       uint32
	OnChannelTime     uint32
	OnChannelBusyTime uint32
}

func decodeRadioUtilization(c *cursor, _ Limits) (CounterRecord, error) {
	var v RadioUtilization
	var err error
	if v.ElapsedTime, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.OnChannelTime, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.OnChannelBusyTime, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordRadioUtilization, RadioUtilization: &v}, nil
}

// OpenflowPort links an sFlow data source to an OpenFlow datapath/port pair
// (counter format 1004).
type OpenflowPort struct {
	DatapathID uint64
	PortNo     uint32
}

func decodeOpenflowPort(c *cursor, _ Limits) (CounterRecord, error) {
	var v OpenflowPort
	var err error
	if v.DatapathID, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.PortNo, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordOpenflowPort, OpenflowPort: &v}, nil
}

// HostDescr identifies the host an agent is reporting on (counter format 2000).
type HostDescr struct {
	Hostname  CountedString
	UUID      Opaque
	MachineType uint32
	OSName    uint32
	OSRelease CountedString
}

func decodeHostDescr(c *cursor, limits Limits) (CounterRecord, error) {
	hostname, err := c.readCountedString(limits.MaxStringBytes)
	if err != nil {
		return CounterRecord{}, err
	}
	uuid, err := c.readOpaque(16)
	if err != nil {
		return CounterRecord{}, err
	}
	machineType, err := c.readU32()
	if err != nil {
		return CounterRecord{}, err
	}
	osName, err := c.readU32()
	if err != nil {
		return CounterRecord{}, err
	}
	osRelease, err := c.readCountedString(limits.MaxStringBytes)
	if err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordHostDescr, HostDescr: &HostDescr{
		Hostname: hostname, UUID: Opaque(uuid), MachineType: machineType, OSName: osName, OSRelease: osRelease,
	}}, nil
}

// HostAdapter is one network adapter reported inside HostAdapters.
type HostAdapter struct {
	IfIndex uint32
	MACs    []Mac
}

// HostAdapters lists the host's network adapters (counter format 2001).
type HostAdapters struct {
	Adapters []HostAdapter
}

func decodeHostAdapters(c *cursor, limits Limits) (CounterRecord, error) {
	adapters, err := readCountedArray(c, limits.MaxRecordsPerSample, "host adapters", func(c *cursor) (HostAdapter, error) {
		ifIndex, err := c.readU32()
		if err != nil {
			return HostAdapter{}, err
		}
		macs, err := readCountedArray(c, limits.MaxRecordsPerSample, "host adapter macs", func(c *cursor) (Mac, error) {
			return c.readMac()
		})
		if err != nil {
			return HostAdapter{}, err
		}
		return HostAdapter{IfIndex: ifIndex, MACs: macs}, nil
	})
	if err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordHostAdapters, HostAdapters: &HostAdapters{Adapters: adapters}}, nil
}

// HostParent names the container a virtualized host runs inside (counter format 2002).
type HostParent struct {
	ContainerType  uint32
	ContainerIndex uint32
}

func decodeHostParent(c *cursor, _ Limits) (CounterRecord, error) {
	var v HostParent
	var err error
	if v.ContainerType, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.ContainerIndex, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordHostParent, HostParent: &v}, nil
}

// HostCPU is the full host CPU/load counter block (counter format 2003).
type HostCPU struct {
	LoadOne      float32
	LoadFive     float32
	LoadFifteen  float32
	ProcRun      uint32
	ProcTotal    uint32
	CPUNum       uint32
	CPUSpeed     uint32
	Uptime       uint32
	CPUUser      uint32
	CPUNice      uint32
	CPUSystem    uint32
	CPUIdle      uint32
	CPUWio       uint32
	CPUIntr      uint32
	CPUSoftIntr  uint32
	Interrupts   uint32
	Contexts     uint32
	CPUSteal     uint32
	CPUGuest     uint32
	CPUGuestNice uint32
}

func decodeHostCPU(c *cursor, _ Limits) (CounterRecord, error) {
	var v HostCPU
	var err error
	if v.LoadOne, err = c.readFloat32(); err != nil {
		return CounterRecord{}, err
	}
	if v.LoadFive, err = c.readFloat32(); err != nil {
		return CounterRecord{}, err
	}
	if v.LoadFifteen, err = c.readFloat32(); err != nil {
		return CounterRecord{}, err
	}
	fields := []*uint32{
		&v.ProcRun, &v.ProcTotal, &v.CPUNum, &v.CPUSpeed, &v.Uptime,
		&v.CPUUser, &v.CPUNice, &v.CPUSystem, &v.CPUIdle, &v.CPUWio,
		&v.CPUIntr, &v.CPUSoftIntr, &v.Interrupts, &v.Contexts,
		&v.CPUSteal, &v.CPUGuest, &v.CPUGuestNice,
	}
	for _, f := range fields {
		if *f, err = c.readU32(); err != nil {
			return CounterRecord{}, err
		}
	}
	return CounterRecord{Kind: CounterRecordHostCPU, HostCPU: &v}, nil
}

// HostMemory is the host memory/swap counter block (counter format 2004).
type HostMemory struct {
	Total   uint64
	Free    uint64
	Shared  uint64
	Buffers uint64
	Cached  uint64
	SwapTotal uint64
	SwapFree  uint64
	PageIn    uint32
	PageOut   uint32
	SwapIn    uint32
	SwapOut   uint32
}

func decodeHostMemory(c *cursor, _ Limits) (CounterRecord, error) {
	var v HostMemory
	var err error
	u64Fields := []*uint64{&v.Total, &v.Free, &v.Shared, &v.Buffers, &v.Cached, &v.SwapTotal, &v.SwapFree}
	for _, f := range u64Fields {
		if *f, err = c.readU64(); err != nil {
			return CounterRecord{}, err
		}
	}
	u32Fields := []*uint32{&v.PageIn, &v.PageOut, &v.SwapIn, &v.SwapOut}
	for _, f := range u32Fields {
		if *f, err = c.readU32(); err != nil {
			return CounterRecord{}, err
		}
	}
	return CounterRecord{Kind: CounterRecordHostMemory, HostMemory: &v}, nil
}

// HostDiskIO is the host disk capacity/IO counter block (counter format 2005).
type HostDiskIO struct {
	Total             uint64
	Free              uint64
	MaxUsedPercent    uint32
	Reads             uint32
	BytesRead         uint64
	ReadTime          uint32
	Writes            uint32
	BytesWritten      uint64
	WriteTime         uint32
}

func decodeHostDiskIO(c *cursor, _ Limits) (CounterRecord, error) {
	var v HostDiskIO
	var err error
	if v.Total, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.Free, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.MaxUsedPercent, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.Reads, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.BytesRead, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.ReadTime, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.Writes, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.BytesWritten, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.WriteTime, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordHostDiskIO, HostDiskIO: &v}, nil
}

// HostNetIO is the host aggregate network IO counter block (counter format 2006).
type HostNetIO struct {
	BytesIn  uint64
	PktsIn   uint32
	ErrsIn   uint32
	DropsIn  uint32
	BytesOut uint64
	PktsOut  uint32
	ErrsOut  uint32
	DropsOut uint32
}

func decodeHostNetIO(c *cursor, _ Limits) (CounterRecord, error) {
	var v HostNetIO
	var err error
	if v.BytesIn, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.PktsIn, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.ErrsIn, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.DropsIn, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.BytesOut, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.PktsOut, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.ErrsOut, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.DropsOut, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordHostNetIO, HostNetIO: &v}, nil
}

// VirtNode is the hypervisor-level resource summary (counter format 2100).
type VirtNode struct {
	MHz         uint32
	CPUs        uint32
	Memory      uint64
	MemoryFree  uint64
	NumDomains  uint32
}

func decodeVirtNode(c *cursor, _ Limits) (CounterRecord, error) {
	var v VirtNode
	var err error
	if v.MHz, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.CPUs, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.Memory, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.MemoryFree, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.NumDomains, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordVirtNode, VirtNode: &v}, nil
}

// VirtCPU is a single guest domain's CPU counters (counter format 2101).
type VirtCPU struct {
	State     uint32
	CPUTime   uint32
	NrVirtCPU uint32
}

func decodeVirtCPU(c *cursor, _ Limits) (CounterRecord, error) {
	var v VirtCPU
	var err error
	if v.State, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.CPUTime, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.NrVirtCPU, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordVirtCPU, VirtCPU: &v}, nil
}

// VirtMemory is a single guest domain's memory counters (counter format 2102).
type VirtMemory struct {
	Memory    uint64
	MaxMemory uint64
}

func decodeVirtMemory(c *cursor, _ Limits) (CounterRecord, error) {
	var v VirtMemory
	var err error
	if v.Memory, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.MaxMemory, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordVirtMemory, VirtMemory: &v}, nil
}

// VirtDiskIO is a single guest domain's disk counters (counter format 2103).
type VirtDiskIO struct {
	Capacity   uint64
	Allocation uint64
	Available  uint64
	RdReq      uint32
	RdBytes    uint64
	WrReq      uint32
	WrBytes    uint64
	Errs       uint32
}

func decodeVirtDiskIO(c *cursor, _ Limits) (CounterRecord, error) {
	var v VirtDiskIO
	var err error
	if v.Capacity, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.Allocation, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.Available, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.RdReq, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.RdBytes, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.WrReq, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.WrBytes, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.Errs, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordVirtDiskIO, VirtDiskIO: &v}, nil
}

// VirtNetIO is a single guest domain's network counters (counter format 2104).
type VirtNetIO struct {
	RxBytes   uint64
	RxPackets uint32
	RxErrs    uint32
	RxDrop    uint32
	TxBytes   uint64
	TxPackets uint32
	TxErrs    uint32
	TxDrop    uint32
}

func decodeVirtNetIO(c *cursor, _ Limits) (CounterRecord, error) {
	var v VirtNetIO
	var err error
	if v.RxBytes, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.RxPackets, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.RxErrs, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.RxDrop, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.TxBytes, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.TxPackets, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.TxErrs, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.TxDrop, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordVirtNetIO, VirtNetIO: &v}, nil
}

// AppResources is a per-application resource-usage snapshot (counter format 2202).
type AppResources struct {
	UserTime   uint32
	SystemTime uint32
	MemUsed    uint64
	MemMax     uint64
	FDOpen     uint32
	FDMax      uint32
	ConnOpen   uint32
	ConnMax    uint32
}

func decodeAppResources(c *cursor, _ Limits) (CounterRecord, error) {
	var v AppResources
	var err error
	if v.UserTime, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.SystemTime, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.MemUsed, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.MemMax, err = c.readU64(); err != nil {
		return CounterRecord{}, err
	}
	if v.FDOpen, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.FDMax, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.ConnOpen, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	if v.ConnMax, err = c.readU32(); err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{Kind: CounterRecordAppResources, AppResources: &v}, nil
}
