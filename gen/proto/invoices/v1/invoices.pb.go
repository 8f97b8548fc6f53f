// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessDocumentRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

type RevalidateDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProcessingId  int32                  `protobuf:"varint,1,opt,name=processing_id,json=processingId,proto3" json:"processing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevalidateDocumentRequest) Reset() {
	*x = RevalidateDocumentRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevalidateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevalidateDocumentRequest) ProtoMessage() {}

func (x *RevalidateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevalidateDocumentRequest.ProtoReflect.Descriptor instead.
func (*RevalidateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{1}
}

func (x *RevalidateDocumentRequest) GetProcessingId() int32 {
	if x != nil {
		return x.ProcessingId
	}
	return 0
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProcessingId  int32                  `protobuf:"varint,1,opt,name=processing_id,json=processingId,proto3" json:"processing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentRequest) GetProcessingId() int32 {
	if x != nil {
		return x.ProcessingId
	}
	return 0
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Entities      []*ExtractedEntity     `protobuf:"bytes,2,rep,name=entities,proto3" json:"entities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetEntities() []*ExtractedEntity {
	if x != nil {
		return x.Entities
	}
	return nil
}

type ListDocumentsRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	ProcessingStatus string                 `protobuf:"bytes,1,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`
	DocumentStatus   string                 `protobuf:"bytes,2,opt,name=document_status,json=documentStatus,proto3" json:"document_status,omitempty"`
	FileName         string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Limit            int32                  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{5}
}

func (x *ListDocumentsRequest) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

func (x *ListDocumentsRequest) GetDocumentStatus() string {
	if x != nil {
		return x.DocumentStatus
	}
	return ""
}

func (x *ListDocumentsRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{6}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetProcessingStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProcessingStatsRequest) Reset() {
	*x = GetProcessingStatsRequest{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessingStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessingStatsRequest) ProtoMessage() {}

func (x *GetProcessingStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessingStatsRequest.ProtoReflect.Descriptor instead.
func (*GetProcessingStatsRequest) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{7}
}

type GetProcessingStatsResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Total              int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	ByProcessingStatus map[string]int32       `protobuf:"bytes,2,rep,name=by_processing_status,json=byProcessingStatus,proto3" json:"by_processing_status,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	ByDocumentStatus   map[string]int32       `protobuf:"bytes,3,rep,name=by_document_status,json=byDocumentStatus,proto3" json:"by_document_status,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	ByExceptionCode    map[string]int32       `protobuf:"bytes,4,rep,name=by_exception_code,json=byExceptionCode,proto3" json:"by_exception_code,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	// Unset when no run recorded a minimum confidence yet.
	AvgMinConfidence *float64 `protobuf:"fixed64,5,opt,name=avg_min_confidence,json=avgMinConfidence,proto3,oneof" json:"avg_min_confidence,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetProcessingStatsResponse) Reset() {
	*x = GetProcessingStatsResponse{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessingStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessingStatsResponse) ProtoMessage() {}

func (x *GetProcessingStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessingStatsResponse.ProtoReflect.Descriptor instead.
func (*GetProcessingStatsResponse) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{8}
}

func (x *GetProcessingStatsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *GetProcessingStatsResponse) GetByProcessingStatus() map[string]int32 {
	if x != nil {
		return x.ByProcessingStatus
	}
	return nil
}

func (x *GetProcessingStatsResponse) GetByDocumentStatus() map[string]int32 {
	if x != nil {
		return x.ByDocumentStatus
	}
	return nil
}

func (x *GetProcessingStatsResponse) GetByExceptionCode() map[string]int32 {
	if x != nil {
		return x.ByExceptionCode
	}
	return nil
}

func (x *GetProcessingStatsResponse) GetAvgMinConfidence() float64 {
	if x != nil && x.AvgMinConfidence != nil {
		return *x.AvgMinConfidence
	}
	return 0
}

type Document struct {
	state                      protoimpl.MessageState `protogen:"open.v1"`
	Id                         int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	FileName                   string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	GcsPath                    string                 `protobuf:"bytes,3,opt,name=gcs_path,json=gcsPath,proto3" json:"gcs_path,omitempty"`
	ProcessingStatus           string                 `protobuf:"bytes,4,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`
	DocumentStatus             string                 `protobuf:"bytes,5,opt,name=document_status,json=documentStatus,proto3" json:"document_status,omitempty"`
	MinConfidence              *float64               `protobuf:"fixed64,6,opt,name=min_confidence,json=minConfidence,proto3,oneof" json:"min_confidence,omitempty"`
	ExceptionReasonCode        string                 `protobuf:"bytes,7,opt,name=exception_reason_code,json=exceptionReasonCode,proto3" json:"exception_reason_code,omitempty"`
	ExceptionReasonDescription string                 `protobuf:"bytes,8,opt,name=exception_reason_description,json=exceptionReasonDescription,proto3" json:"exception_reason_description,omitempty"`
	// JSON-encoded exception payload.
	ExceptionEntities string `protobuf:"bytes,9,opt,name=exception_entities,json=exceptionEntities,proto3" json:"exception_entities,omitempty"`
	ErrorMessage      string `protobuf:"bytes,10,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt         string `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         string `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{9}
}

func (x *Document) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Document) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Document) GetGcsPath() string {
	if x != nil {
		return x.GcsPath
	}
	return ""
}

func (x *Document) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

func (x *Document) GetDocumentStatus() string {
	if x != nil {
		return x.DocumentStatus
	}
	return ""
}

func (x *Document) GetMinConfidence() float64 {
	if x != nil && x.MinConfidence != nil {
		return *x.MinConfidence
	}
	return 0
}

func (x *Document) GetExceptionReasonCode() string {
	if x != nil {
		return x.ExceptionReasonCode
	}
	return ""
}

func (x *Document) GetExceptionReasonDescription() string {
	if x != nil {
		return x.ExceptionReasonDescription
	}
	return ""
}

func (x *Document) GetExceptionEntities() string {
	if x != nil {
		return x.ExceptionEntities
	}
	return ""
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ExtractedEntity struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	EntityName      string                 `protobuf:"bytes,2,opt,name=entity_name,json=entityName,proto3" json:"entity_name,omitempty"`
	EntityValue     string                 `protobuf:"bytes,3,opt,name=entity_value,json=entityValue,proto3" json:"entity_value,omitempty"`
	ConfidenceScore *float64               `protobuf:"fixed64,4,opt,name=confidence_score,json=confidenceScore,proto3,oneof" json:"confidence_score,omitempty"`
	PageNumber      *int32                 `protobuf:"varint,5,opt,name=page_number,json=pageNumber,proto3,oneof" json:"page_number,omitempty"`
	// JSON-encoded bounding box.
	BoundingBox   string `protobuf:"bytes,6,opt,name=bounding_box,json=boundingBox,proto3" json:"bounding_box,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedEntity) Reset() {
	*x = ExtractedEntity{}
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedEntity) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedEntity) ProtoMessage() {}

func (x *ExtractedEntity) ProtoReflect() protoreflect.Message {
	mi := &file_invoices_v1_invoices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedEntity.ProtoReflect.Descriptor instead.
func (*ExtractedEntity) Descriptor() ([]byte, []int) {
	return file_invoices_v1_invoices_proto_rawDescGZIP(), []int{10}
}

func (x *ExtractedEntity) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *ExtractedEntity) GetEntityName() string {
	if x != nil {
		return x.EntityName
	}
	return ""
}

func (x *ExtractedEntity) GetEntityValue() string {
	if x != nil {
		return x.EntityValue
	}
	return ""
}

func (x *ExtractedEntity) GetConfidenceScore() float64 {
	if x != nil && x.ConfidenceScore != nil {
		return *x.ConfidenceScore
	}
	return 0
}

func (x *ExtractedEntity) GetPageNumber() int32 {
	if x != nil && x.PageNumber != nil {
		return *x.PageNumber
	}
	return 0
}

func (x *ExtractedEntity) GetBoundingBox() string {
	if x != nil {
		return x.BoundingBox
	}
	return ""
}

var File_invoices_v1_invoices_proto protoreflect.FileDescriptor

const file_invoices_v1_invoices_proto_rawDesc = "" +
	"\n" +
	"\x1ainvoices/v1/invoices.proto\x12\vinvoices.v1\"5\n" +
	"\x16ProcessDocumentRequest\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\"@\n" +
	"\x19RevalidateDocumentRequest\x12#\n" +
	"\rprocessing_id\x18\x01 \x01(\x05R\fprocessingId\"L\n" +
	"\x17ProcessDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.invoices.v1.DocumentR\bdocument\"9\n" +
	"\x12GetDocumentRequest\x12#\n" +
	"\rprocessing_id\x18\x01 \x01(\x05R\fprocessingId\"\x82\x01\n" +
	"\x13GetDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.invoices.v1.DocumentR\bdocument\x128\n" +
	"\bentities\x18\x02 \x03(\v2\x1c.invoices.v1.ExtractedEntityR\bentities\"\x9f\x01\n" +
	"\x14ListDocumentsRequest\x12+\n" +
	"\x11processing_status\x18\x01 \x01(\tR\x10processingStatus\x12'\n" +
	"\x0fdocument_status\x18\x02 \x01(\tR\x0edocumentStatus\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\"L\n" +
	"\x15ListDocumentsResponse\x123\n" +
	"\tdocuments\x18\x01 \x03(\v2\x15.invoices.v1.DocumentR\tdocuments\"\x1b\n" +
	"\x19GetProcessingStatsRequest\"\x96\x05\n" +
	"\x1aGetProcessingStatsResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12q\n" +
	"\x14by_processing_status\x18\x02 \x03(\v2?.invoices.v1.GetProcessingStatsResponse.ByProcessingStatusEntryR\x12byProcessingStatus\x12k\n" +
	"\x12by_document_status\x18\x03 \x03(\v2=.invoices.v1.GetProcessingStatsResponse.ByDocumentStatusEntryR\x10byDocumentStatus\x12h\n" +
	"\x11by_exception_code\x18\x04 \x03(\v2<.invoices.v1.GetProcessingStatsResponse.ByExceptionCodeEntryR\x0fbyExceptionCode\x121\n" +
	"\x12avg_min_confidence\x18\x05 \x01(\x01H\x00R\x10avgMinConfidence\x88\x01\x01\x1aE\n" +
	"\x17ByProcessingStatusEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1aC\n" +
	"\x15ByDocumentStatusEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1aB\n" +
	"\x14ByExceptionCodeEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01B\x15\n" +
	"\x13_avg_min_confidence\"\xef\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x19\n" +
	"\bgcs_path\x18\x03 \x01(\tR\agcsPath\x12+\n" +
	"\x11processing_status\x18\x04 \x01(\tR\x10processingStatus\x12'\n" +
	"\x0fdocument_status\x18\x05 \x01(\tR\x0edocumentStatus\x12*\n" +
	"\x0emin_confidence\x18\x06 \x01(\x01H\x00R\rminConfidence\x88\x01\x01\x122\n" +
	"\x15exception_reason_code\x18\a \x01(\tR\x13exceptionReasonCode\x12@\n" +
	"\x1cexception_reason_description\x18\b \x01(\tR\x1aexceptionReasonDescription\x12-\n" +
	"\x12exception_entities\x18\t \x01(\tR\x11exceptionEntities\x12#\n" +
	"\rerror_message\x18\n" +
	" \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAtB\x11\n" +
	"\x0f_min_confidence\"\x83\x02\n" +
	"\x0fExtractedEntity\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x1f\n" +
	"\ventity_name\x18\x02 \x01(\tR\n" +
	"entityName\x12!\n" +
	"\fentity_value\x18\x03 \x01(\tR\ventityValue\x12.\n" +
	"\x10confidence_score\x18\x04 \x01(\x01H\x00R\x0fconfidenceScore\x88\x01\x01\x12$\n" +
	"\vpage_number\x18\x05 \x01(\x05H\x01R\n" +
	"pageNumber\x88\x01\x01\x12!\n" +
	"\fbounding_box\x18\x06 \x01(\tR\vboundingBoxB\x13\n" +
	"\x11_confidence_scoreB\x0e\n" +
	"\f_page_number2\xe3\x03\n" +
	"\x0eInvoiceService\x12\\\n" +
	"\x0fProcessDocument\x12#.invoices.v1.ProcessDocumentRequest\x1a$.invoices.v1.ProcessDocumentResponse\x12b\n" +
	"\x12RevalidateDocument\x12&.invoices.v1.RevalidateDocumentRequest\x1a$.invoices.v1.ProcessDocumentResponse\x12P\n" +
	"\vGetDocument\x12\x1f.invoices.v1.GetDocumentRequest\x1a .invoices.v1.GetDocumentResponse\x12V\n" +
	"\rListDocuments\x12!.invoices.v1.ListDocumentsRequest\x1a\".invoices.v1.ListDocumentsResponse\x12e\n" +
	"\x12GetProcessingStats\x12&.invoices.v1.GetProcessingStatsRequest\x1a'.invoices.v1.GetProcessingStatsResponseBDZBgithub.com/si-akram/invoice-docai/gen/proto/invoices/v1;invoicesv1b\x06proto3"

var (
	file_invoices_v1_invoices_proto_rawDescOnce sync.Once
	file_invoices_v1_invoices_proto_rawDescData []byte
)

func file_invoices_v1_invoices_proto_rawDescGZIP() []byte {
	file_invoices_v1_invoices_proto_rawDescOnce.Do(func() {
		file_invoices_v1_invoices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)))
	})
	return file_invoices_v1_invoices_proto_rawDescData
}

var file_invoices_v1_invoices_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_invoices_v1_invoices_proto_goTypes = []any{
	(*ProcessDocumentRequest)(nil),     // 0: invoices.v1.ProcessDocumentRequest
	(*RevalidateDocumentRequest)(nil),  // 1: invoices.v1.RevalidateDocumentRequest
	(*ProcessDocumentResponse)(nil),    // 2: invoices.v1.ProcessDocumentResponse
	(*GetDocumentRequest)(nil),         // 3: invoices.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),        // 4: invoices.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),       // 5: invoices.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),      // 6: invoices.v1.ListDocumentsResponse
	(*GetProcessingStatsRequest)(nil),  // 7: invoices.v1.GetProcessingStatsRequest
	(*GetProcessingStatsResponse)(nil), // 8: invoices.v1.GetProcessingStatsResponse
	(*Document)(nil),                   // 9: invoices.v1.Document
	(*ExtractedEntity)(nil),            // 10: invoices.v1.ExtractedEntity
	nil,                                // 11: invoices.v1.GetProcessingStatsResponse.ByProcessingStatusEntry
	nil,                                // 12: invoices.v1.GetProcessingStatsResponse.ByDocumentStatusEntry
	nil,                                // 13: invoices.v1.GetProcessingStatsResponse.ByExceptionCodeEntry
}
var file_invoices_v1_invoices_proto_depIdxs = []int32{
	9,  // 0: invoices.v1.ProcessDocumentResponse.document:type_name -> invoices.v1.Document
	9,  // 1: invoices.v1.GetDocumentResponse.document:type_name -> invoices.v1.Document
	10, // 2: invoices.v1.GetDocumentResponse.entities:type_name -> invoices.v1.ExtractedEntity
	9,  // 3: invoices.v1.ListDocumentsResponse.documents:type_name -> invoices.v1.Document
	11, // 4: invoices.v1.GetProcessingStatsResponse.by_processing_status:type_name -> invoices.v1.GetProcessingStatsResponse.ByProcessingStatusEntry
	12, // 5: invoices.v1.GetProcessingStatsResponse.by_document_status:type_name -> invoices.v1.GetProcessingStatsResponse.ByDocumentStatusEntry
	13, // 6: invoices.v1.GetProcessingStatsResponse.by_exception_code:type_name -> invoices.v1.GetProcessingStatsResponse.ByExceptionCodeEntry
	0,  // 7: invoices.v1.InvoiceService.ProcessDocument:input_type -> invoices.v1.ProcessDocumentRequest
	1,  // 8: invoices.v1.InvoiceService.RevalidateDocument:input_type -> invoices.v1.RevalidateDocumentRequest
	3,  // 9: invoices.v1.InvoiceService.GetDocument:input_type -> invoices.v1.GetDocumentRequest
	5,  // 10: invoices.v1.InvoiceService.ListDocuments:input_type -> invoices.v1.ListDocumentsRequest
	7,  // 11: invoices.v1.InvoiceService.GetProcessingStats:input_type -> invoices.v1.GetProcessingStatsRequest
	2,  // 12: invoices.v1.InvoiceService.ProcessDocument:output_type -> invoices.v1.ProcessDocumentResponse
	2,  // 13: invoices.v1.InvoiceService.RevalidateDocument:output_type -> invoices.v1.ProcessDocumentResponse
	4,  // 14: invoices.v1.InvoiceService.GetDocument:output_type -> invoices.v1.GetDocumentResponse
	6,  // 15: invoices.v1.InvoiceService.ListDocuments:output_type -> invoices.v1.ListDocumentsResponse
	8,  // 16: invoices.v1.InvoiceService.GetProcessingStats:output_type -> invoices.v1.GetProcessingStatsResponse
	12, // [12:17] is the sub-list for method output_type
	7,  // [7:12] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_invoices_v1_invoices_proto_init() }
func file_invoices_v1_invoices_proto_init() {
	if File_invoices_v1_invoices_proto != nil {
		return
	}
	file_invoices_v1_invoices_proto_msgTypes[8].OneofWrappers = []any{}
	file_invoices_v1_invoices_proto_msgTypes[9].OneofWrappers = []any{}
	file_invoices_v1_invoices_proto_msgTypes[10].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoices_v1_invoices_proto_rawDesc), len(file_invoices_v1_invoices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_invoices_v1_invoices_proto_goTypes,
		DependencyIndexes: file_invoices_v1_invoices_proto_depIdxs,
		MessageInfos:      file_invoices_v1_invoices_proto_msgTypes,
	}.Build()
	File_invoices_v1_invoices_proto = out.File
	file_invoices_v1_invoices_proto_goTypes = nil
	file_invoices_v1_invoices_proto_depIdxs = nil
}
