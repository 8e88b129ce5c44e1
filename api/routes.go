package api

const (
	// PingEndpoint is the endpoint for checking the API status
	PingEndpoint = "/ping"
	// CommunitiesEndpoint is the endpoint for registering a community and
	// listing the registered uids
	CommunitiesEndpoint = "/communities"
	// CommunityEndpoint is the endpoint to get or replace a single record
	CommunityURLParam = "uid"
	CommunityEndpoint = "/communities/{" + CommunityURLParam + "}"
	// CommunityCommitmentEndpoint returns the stored commitment of a record
	// together with its merkle proof
	CommunityCommitmentEndpoint = CommunityEndpoint + "/commitment"
	// RegistryRootEndpoint returns the current commitment tree root
	RegistryRootEndpoint = "/registry/root"
	// SnapshotsEndpoint records and lists registry snapshots
	SnapshotsEndpoint = "/registry/snapshots"
	// SnapshotEndpoint returns a single snapshot
	SnapshotURLParam = "snapshotId"
	SnapshotEndpoint = SnapshotsEndpoint + "/{" + SnapshotURLParam + "}"
)
